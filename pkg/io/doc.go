// Package io persists diagram configurations and target criteria as
// TOML and exports search results as JSON.
//
// The TOML round-trip is lossless for every configuration and target
// field; loaded values are validated before they are returned, so a
// malformed file surfaces the same structured error the constructors
// report.
package io
