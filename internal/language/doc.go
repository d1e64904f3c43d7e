// Package language holds the static language tables shared by translation
// and speech-to-text callers.
//
// Four read-only maps are built at init time from one entry list: standard
// code to English name, name back to code, and the two directions between
// standard codes and the underscore-delimited tags the speech-to-text engine
// emits (for example "__en__"). Lookups are total: unknown input is reported
// as unsupported or passed through unchanged, never as an error.
//
// Looser input (BCP 47 tags, mixed case, free text) goes through Canonicalize
// and Detect, which sit on top of golang.org/x/text and whatlanggo.
package language
