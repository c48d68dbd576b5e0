package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

const (
	defaultPort      = 8000
	defaultDBPath    = "kultura.db"
	defaultStaticDir = "."
)

type Config struct {
	Port      int
	DBPath    string
	StaticDir string
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("kultura-quest", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DBPath, "d", "", "SQLite database path")
	fs.StringVar(&cfg.StaticDir, "s", "", "Static file directory")

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

	if cfg.DBPath == "" {
		cfg.DBPath = os.Getenv("KULTURA_DB_PATH")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = defaultStaticDir
	}

	return cfg, nil
}
