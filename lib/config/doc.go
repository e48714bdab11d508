// Package config provides configuration management for the go-base64 tool.
//
// Defaults, an optional YAML config file in $HOME/.go-base64, and
// GO_BASE64_* environment variables are merged through viper, lowest
// precedence first. Command line flags read the merged values as their
// defaults, so an unset flag follows the configuration while an explicit
// flag always wins.
package config
