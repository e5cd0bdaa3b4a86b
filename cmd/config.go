package cmd

import (
	"fmt"
	"time"
)

// Config carries the environment-driven settings for the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MaxConcurrentOrders caps how many orders may be in flight at once.
	// Zero means the built-in default.
	MaxConcurrentOrders int

	// ShutdownTimeout bounds how long shutdown waits for in-flight
	// lifecycle runs before giving up.
	ShutdownTimeout time.Duration
}

// DSN builds the postgres connection string from the database settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
