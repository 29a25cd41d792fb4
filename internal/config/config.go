// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"

	"viewbadge/internal/domain"
)

const (
	// Marker is the literal substring marking the two insertion points
	// in the badge template document.
	Marker = "$MARKER$"

	DefaultPort     = 3030
	DefaultMaxViews = 10_400
)

// Config holds the server configuration resolved from flags and
// environment variables (flags win).
type Config struct {
	Port          int
	AllInterfaces bool
	MaxViews      uint64
	ColorsFile    string
	TemplateFile  string
	Marker        string
}

// Load parses flags and falls back to environment variables:
// PORT, VIEWBADGE_ALL_INTERFACES, VIEWBADGE_MAX_VIEWS,
// VIEWBADGE_COLORS_FILE, VIEWBADGE_TEMPLATE_FILE.
// Empty file paths mean the embedded defaults are used.
func Load(args []string) (Config, error) {
	cfg := Config{Marker: Marker}

	fs := flag.NewFlagSet("viewbadge", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "port to listen on")
	fs.BoolVar(&cfg.AllInterfaces, "i", false, "host on all interfaces instead of loopback")
	fs.Uint64Var(&cfg.MaxViews, "max-views", 0, "view count at which the scale tops out")
	fs.StringVar(&cfg.ColorsFile, "colors", "", "path to a newline-delimited color scale file")
	fs.StringVar(&cfg.TemplateFile, "template", "", "path to a badge template file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if !cfg.AllInterfaces {
		cfg.AllInterfaces = getEnvBool("VIEWBADGE_ALL_INTERFACES", false)
	}

	if cfg.MaxViews == 0 {
		if maxStr := os.Getenv("VIEWBADGE_MAX_VIEWS"); maxStr != "" {
			maxViews, err := strconv.ParseUint(maxStr, 10, 64)
			if err != nil || maxViews == 0 {
				return Config{}, domain.ErrInvalidMaxViews
			}
			cfg.MaxViews = maxViews
		} else {
			cfg.MaxViews = DefaultMaxViews
		}
	}

	if cfg.ColorsFile == "" {
		cfg.ColorsFile = os.Getenv("VIEWBADGE_COLORS_FILE")
	}
	if cfg.TemplateFile == "" {
		cfg.TemplateFile = os.Getenv("VIEWBADGE_TEMPLATE_FILE")
	}

	return cfg, nil
}

// Addr returns the listen address, binding loopback unless hosting on
// all interfaces was requested.
func (c Config) Addr() string {
	host := "127.0.0.1"
	if c.AllInterfaces {
		host = "0.0.0.0"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "true" || val == "1" || val == "yes" {
			return true
		}
		if val == "false" || val == "0" || val == "no" {
			return false
		}
	}
	return defaultVal
}
