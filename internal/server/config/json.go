package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/tweetstats/internal/flagx"
	"github.com/dmitrijs2005/tweetstats/internal/timex"
	json "github.com/goccy/go-json"
)

// JSONConfig is the on-disk shape of the server configuration. Durations
// use timex.Duration so both "1h" and integer nanoseconds are accepted.
// Absent keys leave the defaults untouched; present lists replace them.
type JSONConfig struct {
	EndpointAddr                *string         `json:"endpoint_addr"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BearerToken                 *string         `json:"bearer_token"`
	LogLevel                    *string         `json:"log_level"`
	Accounts                    []Account       `json:"accounts"`
	Profiles                    []Profile       `json:"profiles"`
}

// parseJSON loads the file named by -c or -config, if any, into config.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.BearerToken != nil {
		config.BearerToken = *c.BearerToken
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.Accounts != nil {
		config.Accounts = c.Accounts
	}
	if c.Profiles != nil {
		config.Profiles = c.Profiles
	}
	return nil
}
