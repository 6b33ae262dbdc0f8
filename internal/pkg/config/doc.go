// Package config holds the settings of the report vault binaries.
//
// Settings are read from a YAML file through viper, overridden by
// REPORT_VAULT_* environment variables and validated with
// go-playground/validator before any component is constructed.
package config
