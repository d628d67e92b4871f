// Package config loads runtime configuration for the tweetstats client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-m string      base URL of the metrics API
//	-a string      base URL of the auth service (/login, /name)
//	-t string      static bearer token for the metrics API
//	-x             also send the session credential as X-Auth-Token
//	-tolerant      report fetch failures as notifications, not errors
//	-timeout dur   per-request timeout, e.g. 10s
//	-db string     path of the local SQLite database
//	-log string    log level: debug, info, warn, error
//	-o string      directory for exported charts
//	-s3-bucket     export charts to this bucket instead of -o
//	-s3-prefix     key prefix inside the bucket
//	-s3-region     bucket region
//	-s3-endpoint   S3-compatible endpoint (MinIO etc.)
//
// # JSON schema
//
// Durations accept Go duration strings or integer nanoseconds:
//
//	{
//	  "metrics_base_url": "https://api.twitter.com",
//	  "auth_base_url": "http://127.0.0.1:8080",
//	  "bearer_token": "YOUR_BEARER_TOKEN",
//	  "forward_user_credential": false,
//	  "tolerant_fetch": false,
//	  "request_timeout": "10s",
//	  "database_path": "tweetstats.db",
//	  "log_level": "info",
//	  "export_dir": "charts",
//	  "s3": {"bucket": "", "prefix": "", "region": "us-east-1",
//	         "base_endpoint": "", "access_key": "", "secret_key": ""}
//	}
//
// Only keys present in the file override the defaults.
package config
