// Package config loads runtime configuration for the accountbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c or -config. The .yaml and
//     .yml extensions select YAML.
//  3. Command-line flags, which override earlier values.
//
// # File schema
//
// Every key is optional. storage_timeout uses timex.Duration, so it may be
// "5s" or integer nanoseconds:
//
//	{
//	  "backend": "postgres",
//	  "database_dsn": "postgres://user:pass@db:5432/accountbook",
//	  "storage_namespace": "team-a",
//	  "storage_timeout": "5s",
//	  "locale": "ru",
//	  "log_format": "zap",
//	  "log_level": "debug"
//	}
//
// S3 settings: s3_bucket, s3_region, s3_base_endpoint (MinIO and friends),
// s3_access_key, s3_secret_key, s3_prefix.
package config
