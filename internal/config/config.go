package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	// JWTKey is the token signing secret. It is only accepted from the
	// environment, never from the config file.
	JWTKey string `yaml:"-"`
}

// Load reads configuration from the optional YAML file at configPath and then
// applies environment overrides. A .env file in the working directory is
// loaded first if present. The recognized variables are DB_HOST, DB_PORT,
// DB_USER, DB_PASSWORD, DB_NAME, JWT_KEY and PORT.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	config.Database.Host = "localhost"
	config.Database.Port = "3306"
	config.Server.Port = "8080"

	if file, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		file.Close()
	}

	fromEnv(&config.Database.Host, "DB_HOST")
	fromEnv(&config.Database.Port, "DB_PORT")
	fromEnv(&config.Database.User, "DB_USER")
	fromEnv(&config.Database.Password, "DB_PASSWORD")
	fromEnv(&config.Database.Name, "DB_NAME")
	fromEnv(&config.JWTKey, "JWT_KEY")
	fromEnv(&config.Server.Port, "PORT")

	if config.JWTKey == "" {
		return nil, errors.New("JWT_KEY is required")
	}

	return config, nil
}

func fromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// DSN builds the MySQL data source name for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
