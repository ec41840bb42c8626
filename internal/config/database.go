package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Database holds the connection settings of the MySQL report store
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// GetDatabase reads the DB_* settings. A .env file in the base directory
// is loaded first; variables already set in the environment win.
func (c *Config) GetDatabase() Database {
	envPath := filepath.Join(c.BaseDir, ".env")
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(envPath)

	return Database{
		Host:     getenv("DB_HOST", DefaultDBHost),
		Port:     getenv("DB_PORT", DefaultDBPort),
		User:     getenv("DB_USERNAME", DefaultDBUser),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getenv("DB_DATABASE", DefaultDBDatabase),
	}
}

// ServerDSN returns the DSN of the server, without selecting a database
func (d Database) ServerDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/?parseTime=true", d.User, d.Password, d.Host, d.Port)
}

// DSN returns the DSN of the report database
func (d Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, d.Name)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
