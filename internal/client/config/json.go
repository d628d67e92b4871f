package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/tweetstats/internal/timex"
	json "github.com/goccy/go-json"
)

// jsonConfig is the on-disk shape. Pointer fields tell "absent" from zero.
type jsonConfig struct {
	MetricsBaseURL        *string         `json:"metrics_base_url"`
	AuthBaseURL           *string         `json:"auth_base_url"`
	BearerToken           *string         `json:"bearer_token"`
	ForwardUserCredential *bool           `json:"forward_user_credential"`
	TolerantFetch         *bool           `json:"tolerant_fetch"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	DatabasePath          *string         `json:"database_path"`
	LogLevel              *string         `json:"log_level"`
	ExportDir             *string         `json:"export_dir"`
	S3                    *jsonS3         `json:"s3"`
}

type jsonS3 struct {
	Bucket       *string `json:"bucket"`
	Prefix       *string `json:"prefix"`
	Region       *string `json:"region"`
	BaseEndpoint *string `json:"base_endpoint"`
	AccessKey    *string `json:"access_key"`
	SecretKey    *string `json:"secret_key"`
}

func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.MetricsBaseURL, jc.MetricsBaseURL)
	setString(&cfg.AuthBaseURL, jc.AuthBaseURL)
	setString(&cfg.BearerToken, jc.BearerToken)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.ExportDir, jc.ExportDir)
	if jc.ForwardUserCredential != nil {
		cfg.ForwardUserCredential = *jc.ForwardUserCredential
	}
	if jc.TolerantFetch != nil {
		cfg.TolerantFetch = *jc.TolerantFetch
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if s := jc.S3; s != nil {
		setString(&cfg.S3.Bucket, s.Bucket)
		setString(&cfg.S3.Prefix, s.Prefix)
		setString(&cfg.S3.Region, s.Region)
		setString(&cfg.S3.BaseEndpoint, s.BaseEndpoint)
		setString(&cfg.S3.AccessKey, s.AccessKey)
		setString(&cfg.S3.SecretKey, s.SecretKey)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
