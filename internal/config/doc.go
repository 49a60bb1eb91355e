// Package config provides configuration loading, merging, and validation
// facilities for the uniqueness service and its command-line client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The "memory" storage driver keeps no data and reports every value as
// unique. Use it for development and tests, never in production.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the check client.
package config
