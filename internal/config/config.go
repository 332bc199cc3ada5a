package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the API server and the report tool.
type Config struct {
	Host         string
	Port         string
	DatabasePath string
	Author       string
	Timezone     string
	RabbitMQURL  string
	LogSQL       bool
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf(".env not loaded: %v", err)
	}

	v := viper.New()
	v.SetDefault("APP_HOST", "localhost")
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("DATABASE_PATH", "./database.sqlite")
	v.SetDefault("APP_AUTHOR", "Patryk Szczotka")
	v.SetDefault("APP_TIMEZONE", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_SQL", false)
	v.AutomaticEnv()

	cfg := &Config{
		Host:         v.GetString("APP_HOST"),
		Port:         v.GetString("APP_PORT"),
		DatabasePath: v.GetString("DATABASE_PATH"),
		Author:       v.GetString("APP_AUTHOR"),
		Timezone:     v.GetString("APP_TIMEZONE"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
		LogSQL:       v.GetBool("LOG_SQL"),
	}
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH must not be empty")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the host:port the HTTP listener binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves APP_TIMEZONE, falling back to the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
