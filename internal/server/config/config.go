// Package config handles configuration for the stand-in API server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// PlaceholderBearerToken matches the client's default static token so the
// two work together out of the box.
const PlaceholderBearerToken = "YOUR_BEARER_TOKEN"

// Account is a login accepted by the auth endpoints.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Profile is a canned metrics answer for one username.
type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	FollowersCount *int64 `json:"followers_count,omitempty"`
	FollowingCount *int64 `json:"following_count,omitempty"`
	TweetCount     *int64 `json:"tweet_count,omitempty"`
	ListedCount    *int64 `json:"listed_count,omitempty"`
}

// Config holds runtime settings for the stand-in API server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of tokens issued by /login.
//   - BearerToken: static token the metrics route expects.
//   - Accounts: logins accepted by /login.
//   - Profiles: users known to the metrics route.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BearerToken                 string
	LogLevel                    string
	Accounts                    []Account
	Profiles                    []Profile
}

func i64(v int64) *int64 { return &v }

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.BearerToken = PlaceholderBearerToken
	c.LogLevel = "info"
	c.Accounts = []Account{
		{Username: "demo", Password: "demo-password", Name: "Demo User"},
	}
	c.Profiles = []Profile{
		{ID: "12", Name: "jack", Username: "jack", FollowersCount: i64(6500000), FollowingCount: i64(4500), TweetCount: i64(29000), ListedCount: i64(33000)},
		{ID: "783214", Name: "X", Username: "X", FollowersCount: i64(67000000), FollowingCount: i64(0), TweetCount: i64(15000)},
		{ID: "2244994945", Name: "Developers", Username: "XDevelopers", FollowersCount: i64(570000), FollowingCount: i64(2000)},
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. args
// excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
