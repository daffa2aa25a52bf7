package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateEncode(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.BackupDir == "" {
		return errors.New("paths.backup_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateTools() error {
	if err := ensurePositiveMap(map[string]int{
		"tools.metadata_timeout": c.Tools.MetadataTimeout,
		"tools.encode_timeout":   c.Tools.EncodeTimeout,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncode() error {
	if c.Encode.TargetSavingsPercent < 0 || c.Encode.TargetSavingsPercent > 100 {
		return errors.New("encode.target_savings_percent must be between 0 and 100")
	}
	if c.Encode.SavingsMarginPercent < 0 || c.Encode.SavingsMarginPercent > 100 {
		return errors.New("encode.savings_margin_percent must be between 0 and 100")
	}
	if c.Encode.SavingsMarginPercent > c.Encode.TargetSavingsPercent {
		return errors.New("encode.savings_margin_percent must not exceed encode.target_savings_percent")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
