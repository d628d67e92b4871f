package config

import (
	"time"

	"github.com/dmitrijs2005/tweetstats/internal/flagx"
)

// PlaceholderBearerToken is the default static token. It is a literal
// placeholder and has to be replaced for a real metrics API.
const PlaceholderBearerToken = "YOUR_BEARER_TOKEN"

type S3Config struct {
	Bucket       string
	Prefix       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// Config holds runtime settings for the tweetstats client.
type Config struct {
	MetricsBaseURL        string
	AuthBaseURL           string
	BearerToken           string
	ForwardUserCredential bool
	TolerantFetch         bool
	RequestTimeout        time.Duration
	DatabasePath          string
	LogLevel              string
	ExportDir             string
	S3                    S3Config
}

func (c *Config) LoadDefaults() {
	c.MetricsBaseURL = "https://api.twitter.com"
	c.AuthBaseURL = "http://127.0.0.1:8080"
	c.BearerToken = PlaceholderBearerToken
	c.ForwardUserCredential = false
	c.TolerantFetch = false
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "tweetstats.db"
	c.LogLevel = "info"
	c.ExportDir = "charts"
	c.S3 = S3Config{Region: "us-east-1"}
}

// UsesPlaceholderToken reports whether the static token was never set.
func (c *Config) UsesPlaceholderToken() bool {
	return c.BearerToken == PlaceholderBearerToken
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigPath(args); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
