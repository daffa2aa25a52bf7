// Package config loads, normalizes, and validates motionsplit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config
// type centralizes every knob the CLI needs: backup and log directories,
// external tool binaries and timeouts, and the encode savings policy.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
