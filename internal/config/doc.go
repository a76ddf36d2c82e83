// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources; for every field the first
// non-zero value wins in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The result is an immutable [StructuredConfig] that is built once in main
// and passed explicitly to every component.
package config
