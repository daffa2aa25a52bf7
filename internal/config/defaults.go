package config

const (
	defaultBackupDir            = "~/.local/share/motionsplit/backups"
	defaultLogDir               = "~/.local/share/motionsplit/logs"
	defaultExiftoolBinary       = "exiftool"
	defaultFFmpegBinary         = "ffmpeg"
	defaultFFprobeBinary        = "ffprobe"
	defaultMetadataTimeout      = 60
	defaultEncodeTimeout        = 600
	defaultTargetSavingsPercent = 30
	defaultSavingsMarginPercent = 5
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BackupDir: defaultBackupDir,
			LogDir:    defaultLogDir,
		},
		Tools: Tools{
			Exiftool:        defaultExiftoolBinary,
			FFmpeg:          defaultFFmpegBinary,
			FFprobe:         defaultFFprobeBinary,
			MetadataTimeout: defaultMetadataTimeout,
			EncodeTimeout:   defaultEncodeTimeout,
		},
		Encode: Encode{
			TargetSavingsPercent: defaultTargetSavingsPercent,
			SavingsMarginPercent: defaultSavingsMarginPercent,
			LoopRendition:        false,
			KeepOriginalClip:     false,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
