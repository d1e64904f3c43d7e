// Package config loads, normalizes, and validates langcodes configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LANGCODES_LOG_LEVEL environment override. The
// configuration only tunes presentation, logging, and detection thresholds;
// the language tables themselves are compiled in and never read from disk.
package config
