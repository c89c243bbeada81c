// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the link
// directory server. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session token parameters, the bootstrap administrator and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Security holds password hashing and client address settings.
	Security Security `envPrefix:"SECURITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC key used to sign session tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session opened without "remember".
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RememberDuration is the lifetime of a session opened with "remember".
	RememberDuration time.Duration `env:"REMEMBER_DURATION"`

	// AdminUsername and AdminPassword seed the first administrator when the
	// users table is empty on start.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks the session cookie Secure. Enable behind TLS.
	SecureCookies bool `env:"SECURE_COOKIES"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`

	DSN string `env:"DATABASE_URI"`
}

// Security holds settings of the login guard surroundings.
type Security struct {
	BcryptCost int `env:"BCRYPT_COST"`

	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Leave disabled unless a trusted reverse proxy sets them,
	// otherwise clients choose the address the IP block is counted against.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// GetStructuredConfig assembles the server configuration from defaults,
// environment, process flags and the optional JSON file, then validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "home",
			TokenDuration:    12 * time.Hour,
			RememberDuration: 30 * 24 * time.Hour,
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
		},
		Security: Security{
			BcryptCost: 10,
		},
	}
}
