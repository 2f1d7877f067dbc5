// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SessionTTL   time.Duration
	BcryptCost   int
}

const (
	defaultPort       = 4000
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultBcryptCost = 10
)

// ParseFlags validates flags and fills in env fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttl string

	fs := flag.NewFlagSet("pollhive", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Session and hashing tunables
	fs.StringVar(&ttl, "session-ttl", "", "Session lifetime (e.g. 168h)")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "bcrypt cost factor")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	if ttl == "" {
		cfg.SessionTTL = defaultSessionTTL
	} else {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid session TTL")
		}
		cfg.SessionTTL = d
	}

	if cfg.BcryptCost == 0 {
		if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
			cost, err := strconv.Atoi(costStr)
			if err != nil {
				return Config{}, errors.New("invalid BCRYPT_COST env variable")
			}
			cfg.BcryptCost = cost
		} else {
			cfg.BcryptCost = defaultBcryptCost
		}
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, errors.New("bcrypt cost must be between 4 and 31")
	}

	return cfg, nil
}
