package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/tweetstats/internal/flagx"
)

var knownFlags = []string{
	"-m", "-a", "-t", "-x", "-tolerant", "-timeout", "-db", "-log", "-o",
	"-s3-bucket", "-s3-prefix", "-s3-region", "-s3-endpoint",
}

// parseFlags overlays cfg with the flags found in args. Arguments it does
// not know about (for example -c) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("tweetstats", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.MetricsBaseURL, "m", cfg.MetricsBaseURL, "metrics API base URL")
	fs.StringVar(&cfg.AuthBaseURL, "a", cfg.AuthBaseURL, "auth service base URL")
	fs.StringVar(&cfg.BearerToken, "t", cfg.BearerToken, "static bearer token")
	fs.BoolVar(&cfg.ForwardUserCredential, "x", cfg.ForwardUserCredential, "forward session credential as X-Auth-Token")
	fs.BoolVar(&cfg.TolerantFetch, "tolerant", cfg.TolerantFetch, "notify on fetch failure instead of failing")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "chart export directory")
	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "chart export bucket")
	fs.StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "chart export key prefix")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "chart export bucket region")
	fs.StringVar(&cfg.S3.BaseEndpoint, "s3-endpoint", cfg.S3.BaseEndpoint, "S3-compatible endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
