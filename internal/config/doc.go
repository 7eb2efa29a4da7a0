// Package config loads the settings mcp-config-glean falls back to when a
// flag is not given.
//
// # Configuration File
//
// The default file is $XDG_CONFIG_HOME/mcp-config-glean/config.yaml; a
// config.yaml in the working directory is also picked up:
//
//	version: 1
//	instance: my-company
//	client: cursor
//	transport: http
//	format: native   # or json, jsonc, yaml, toml
//
// The API token is deliberately absent from the example. It can be stored
// as api_token but is better supplied through GLEAN_API_TOKEN.
//
// # Environment
//
// Every key can be overridden with a GLEAN_ prefixed variable, so the same
// GLEAN_INSTANCE and GLEAN_API_TOKEN the local server reads also drive this
// tool.
//
// # Validation
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//		// report every problem at once
//	}
package config
