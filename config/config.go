package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "EMSCTL"

type Config struct {
	// URI of the EMS API, eg: http://127.0.0.1:7777
	URI      string        `mapstructure:"uri"`
	LogLevel string        `mapstructure:"log_level"`
	Timeout  time.Duration `mapstructure:"timeout"`

	// Calls per second, 0 disables the limiter
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// Load reads flags from args, then EMSCTL_* environment variables, then an
// optional emsctl.yaml. Arguments after the first non-flag are returned
// untouched.
func Load(args []string) (Config, []string, error) {
	var cfg Config

	fs := pflag.NewFlagSet("emsctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	configFile := fs.String("config", "", "path to a config file")
	fs.String("uri", "http://127.0.0.1:7777", "EMS API uri")
	fs.String("log-level", "info", "log level")
	fs.Duration("timeout", 0, "per call timeout, 0 for none")
	fs.Float64("rate-limit", 0, "max calls per second, 0 for unlimited")
	fs.Int("rate-burst", 1, "burst allowed by the rate limiter")

	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	v := viper.New()
	for key, flag := range map[string]string{
		"uri":        "uri",
		"log_level":  "log-level",
		"timeout":    "timeout",
		"rate_limit": "rate-limit",
		"rate_burst": "rate-burst",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return cfg, nil, errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("emsctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configFile != "" || !errors.As(err, &notFound) {
			return cfg, nil, errors.Wrap(err, "read config")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, nil, errors.Wrap(err, "decode config")
	}

	return cfg, fs.Args(), nil
}
