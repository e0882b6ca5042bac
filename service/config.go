package service

import (
	"os"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Config describes how Service builds its logger.
type Config struct {
	// Backend is one of zerolog, zap, logrus or slog. Empty means zerolog.
	Backend string `yaml:"backend" validate:"omitempty,oneof=zerolog zap logrus slog"`
	// Level is the least important level emitted, e.g. "info".
	Level string `yaml:"level" validate:"required,loglevel"`
	// CallerLevel enables caller capture at this level and above.
	CallerLevel string `yaml:"caller_level" validate:"omitempty,loglevel"`
	// Name is the root logger name.
	Name string `yaml:"name"`
	// ErrorChain renders the whole cause chain of logged errors.
	ErrorChain bool `yaml:"error_chain"`

	WithTimestamp     bool   `yaml:"with_timestamp"`
	ConsoleLogging    bool   `yaml:"console_logging"`
	Format            string `yaml:"format" validate:"omitempty,oneof=json console"`
	ConsoleNoColor    bool   `yaml:"console_no_color"`
	ConsoleTimeFormat string `yaml:"console_time_format"`

	FileLogging       bool   `yaml:"file_logging"`
	RelLogFileDir     string `yaml:"rel_log_file_dir" validate:"omitempty,reldir"`
	LogFileName       string `yaml:"log_file_name" validate:"omitempty,excludesall=/\\"`
	LogFileMaxBackups int    `yaml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `yaml:"log_file_max_age_days" validate:"gte=0"`
	LogFileMaxSizeMB  int    `yaml:"log_file_max_size_mb" validate:"gte=0"`
	LogFileCompress   bool   `yaml:"log_file_compress"`
}

// DefaultConfig returns the configuration used for keys missing from a
// loaded file: zerolog at info level, human readable output on stderr.
func DefaultConfig() *Config {
	return &Config{
		Backend:           BackendZerolog,
		Level:             "info",
		WithTimestamp:     true,
		ConsoleLogging:    true,
		Format:            FormatConsole,
		RelLogFileDir:     "logs",
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
		LogFileMaxSizeMB:  10,
	}
}

// LoadConfig reads a YAML (or JSON) file on top of DefaultConfig and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "service.LoadConfig"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}

	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgParseConfig)
	}

	if err = cfg.Validate(); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return cfg, nil
}
