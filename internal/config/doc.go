// Package config provides configuration loading, merging, and validation
// facilities for the gym client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (GYM_ prefix)
//  4. Command-line flags
//
// The entry point is [GetClientConfig]; [Flags] and [FromCLI] bridge the
// command-line layer.
package config
