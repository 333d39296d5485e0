package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel           string `yaml:"log-level" env-default:"info"`
	HTTPPort           string `yaml:"http-port" env-default:"9090"`
	SocketPort         string `yaml:"socket-port" env-default:"8080"`
	GracePeriodSeconds int    `yaml:"grace-period-seconds" env-default:"5"`
	Redis              Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:""`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetGracePeriod - how long a disconnected player's seat stays reserved.
func (that *Config) GetGracePeriod() time.Duration {
	return time.Duration(that.GracePeriodSeconds) * time.Second
}

// GetRedisAddr - empty when no redis host is configured, which disables
// the game result archive.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
