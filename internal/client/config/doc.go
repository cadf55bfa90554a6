// Package config loads runtime settings for the KrishiConnect CLI.
//
// Values are resolved in three layers, each overriding the previous one:
//
//  1. Hard-coded defaults (LoadDefaults).
//  2. A JSON file given via -c/-config.
//  3. Command-line flags (-a endpoint, -t timeout seconds).
//
// The JSON loader uses timex.Duration, so the timeout can be either a
// string like "10s" or integer nanoseconds.
package config
