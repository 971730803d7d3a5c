package env

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`
	Web struct {
		Port    int  `mapstructure:"port"`
		Prefork bool `mapstructure:"prefork"`
	} `mapstructure:"web"`
	JWT struct {
		Secret                string `mapstructure:"secret"`
		AccessTokenExpiration int    `mapstructure:"access_token_expiration"`
	} `mapstructure:"jwt"`
	Log struct {
		Level int `mapstructure:"level"`
	} `mapstructure:"log"`
	Database struct {
		DSN string `mapstructure:"dsn"`
		Log struct {
			Level int `mapstructure:"level"`
		} `mapstructure:"log"`
		Pool struct {
			Idle     int `mapstructure:"idle"`
			Max      int `mapstructure:"max"`
			Lifetime int `mapstructure:"lifetime"`
		} `mapstructure:"pool"`
	} `mapstructure:"database"`
	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		CacheTTL int    `mapstructure:"cache_ttl"`
		Pool     struct {
			Size        int `mapstructure:"size"`
			MinIdle     int `mapstructure:"min_idle"`
			MaxIdle     int `mapstructure:"max_idle"`
			Lifetime    int `mapstructure:"lifetime"`
			IdleTimeout int `mapstructure:"idle_timeout"`
		} `mapstructure:"pool"`
	} `mapstructure:"redis"`
	Monitoring struct {
		Otel struct {
			Host string `mapstructure:"host"`
		} `mapstructure:"otel"`
	} `mapstructure:"monitoring"`
}

func (c *Config) GetAccessTokenExpiration() time.Duration {
	return time.Duration(c.JWT.AccessTokenExpiration) * time.Second
}

func (c *Config) GetCacheTTL() time.Duration {
	return time.Duration(c.Redis.CacheTTL) * time.Second
}

func NewConfig() *Config {
	config := viper.New()

	// Set configuration file details
	config.SetConfigName("config")
	config.SetConfigType("yml")
	config.AddConfigPath("./../")
	config.AddConfigPath("./")

	// Read the configuration file
	if err := config.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error reading config file: %w", err))
	}

	// Unmarshal into the Config struct
	cfg := new(Config)
	if err := config.Unmarshal(cfg); err != nil {
		panic(fmt.Errorf("fatal error unmarshaling config: %w", err))
	}

	return cfg
}
