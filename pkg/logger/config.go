package logger

import "log/slog"

// Config is the environment-driven logger configuration, loaded with pkg/config.
type Config struct {
	Level   slog.Level `env:"TOAST_LOG_LEVEL" envDefault:"info"`
	Format  Format     `env:"TOAST_LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
	Service string     `env:"TOAST_SERVICE" envDefault:"toastkit"`
}

// Options converts the configuration into factory options.
func (c Config) Options() []Option {
	opts := []Option{WithLevel(c.Level), WithService(c.Service)}
	if c.Format != "" {
		opts = append(opts, WithFormat(c.Format))
	}
	return opts
}
