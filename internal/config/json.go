package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/accountbook/internal/flagx"
	"github.com/dmitrijs2005/accountbook/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is the on-disk shape of the config file, in JSON or YAML.
// Pointer fields tell "absent" from "set to the zero value", so a partial
// file only overrides what it mentions.
type JsonConfig struct {
	Backend          *string         `json:"backend" yaml:"backend"`
	SQLitePath       *string         `json:"sqlite_path" yaml:"sqlite_path"`
	DatabaseDSN      *string         `json:"database_dsn" yaml:"database_dsn"`
	S3Bucket         *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region         *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3AccessKey      *string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey      *string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Prefix         *string         `json:"s3_prefix" yaml:"s3_prefix"`
	StorageNamespace *string         `json:"storage_namespace" yaml:"storage_namespace"`
	StorageTimeout   *timex.Duration `json:"storage_timeout" yaml:"storage_timeout"`
	Locale           *string         `json:"locale" yaml:"locale"`
	LogFormat        *string         `json:"log_format" yaml:"log_format"`
	LogLevel         *string         `json:"log_level" yaml:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Files
// ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// It panics when the file cannot be read or decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		panic(err)
	}

	setString(&cfg.Backend, jc.Backend)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.StorageNamespace, jc.StorageNamespace)
	setString(&cfg.Locale, jc.Locale)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.StorageTimeout != nil {
		cfg.StorageTimeout = jc.StorageTimeout.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
