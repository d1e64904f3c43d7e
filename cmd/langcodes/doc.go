// Package main hosts the langcodes CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the compiled language tables: checking
// and resolving codes, converting between standard codes and speech-to-text
// tags, listing and verifying the tables, detecting the language of text, and
// scaffolding configuration. It centralizes configuration resolution, output
// format selection, and structured logging setup so subcommands only deal
// with rendering.
//
// Keep this package lean: lookup behaviour belongs in internal/language and
// is surfaced here through dedicated commands or flags.
package main
