// Package config handles application configuration loading and validation.
//
// Configuration is loaded from lssgen.yml (or config.yml) and validated using
// struct tags. Every setting has a default, so running without a file is fine.
package config
