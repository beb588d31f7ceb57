package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port int
	}
	Database struct {
		Driver string
		URL    string
	}
	Site struct {
		BaseURL           string
		PublicSitemapBase string
	}
	Generator struct {
		PageSize         int
		OutputDir        string
		RunLogDir        string
		DebounceWindow   string
		RunDeadline      string
		ScheduleInterval string
	}
	Notifier struct {
		Enabled   bool
		Endpoints []string
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("site.baseurl", "https://www.carenavi.com")
	viper.SetDefault("site.publicsitemapbase", "https://sitemaps.carenavi.com")
	viper.SetDefault("generator.pagesize", 500)
	viper.SetDefault("generator.outputdir", "out/sitemaps")
	viper.SetDefault("generator.runlogdir", "logs")
	viper.SetDefault("generator.debouncewindow", "5m")
	viper.SetDefault("generator.rundeadline", "9m")
	viper.SetDefault("generator.scheduleinterval", "24h")
	viper.SetDefault("notifier.enabled", true)

	viper.SetEnvPrefix("sitemapd")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) GetDebounceWindow() time.Duration {
	return parseDuration(c.Generator.DebounceWindow, 5*time.Minute)
}

func (c *Config) GetRunDeadline() time.Duration {
	return parseDuration(c.Generator.RunDeadline, 9*time.Minute)
}

func (c *Config) GetScheduleInterval() time.Duration {
	return parseDuration(c.Generator.ScheduleInterval, 24*time.Hour)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}
