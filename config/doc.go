// Package config loads servedir configuration from defaults, YAML config
// files, SERVEDIR_* environment variables, and CLI flags, in increasing
// order of precedence, and validates the result.
//
// # Sources
//
// Defaults mirror the CLI's historical behavior: serve the current
// directory on 0.0.0.0:8000 with uploads and authentication disabled.
// A config file named config.yaml in the working directory is picked up
// automatically when no explicit file is given.
//
// # Environment
//
// Keys map dots to underscores with the SERVEDIR prefix, e.g.
// SERVEDIR_SERVER_PORT=9000 or SERVEDIR_UPLOAD_ENABLED=true.
//
// # Validation
//
// The loaded struct is checked with go-playground/validator: the bind host
// must be an IP, the port must be in range, the log level must be one of
// debug/info/warn/error, and a credential, when set, must contain a colon.
package config
