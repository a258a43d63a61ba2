// Package config provides configuration structures and utilities for the
// contentaudit CLI. It defines the options controlling an audit run,
// report generation preferences, and the YAML loader for audit request
// files.
package config
