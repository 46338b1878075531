// Package config defines the application configuration structure and loads
// it from environment variables (and optionally a config file) using viper.
package config
