package language

import (
	"maps"
	"slices"
	"strings"
)

type entry struct {
	code string // standard code used by the translation backends
	name string // English display name
	tag  string // speech-to-text engine tag, empty when the engine lacks the language
}

// Entry is an exported view of one table row.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Tag  string `json:"tag,omitempty"`
}

type tables struct {
	codes          map[string]string // code -> name
	names          map[string]string // name -> code
	fromUnderscore map[string]string // tag -> code
	toUnderscore   map[string]string // code -> tag
}

// Index maps built at init time.
var std tables

func init() {
	std = buildTables(languages)
}

func buildTables(rows []entry) tables {
	t := tables{
		codes:          make(map[string]string, len(rows)),
		names:          make(map[string]string, len(rows)),
		fromUnderscore: make(map[string]string, len(rows)),
		toUnderscore:   make(map[string]string, len(rows)),
	}
	for _, e := range rows {
		t.codes[e.code] = e.name
		t.names[e.name] = e.code
		if e.tag != "" {
			t.fromUnderscore[e.tag] = e.code
			t.toUnderscore[e.code] = e.tag
		}
	}
	return t
}

// Codes returns a copy of the standard table (code -> name).
func Codes() map[string]string { return maps.Clone(std.codes) }

// Names returns a copy of the reverse table (name -> code).
func Names() map[string]string { return maps.Clone(std.names) }

// FromUnderscore returns a copy of the tag -> standard code table.
func FromUnderscore() map[string]string { return maps.Clone(std.fromUnderscore) }

// ToUnderscore returns a copy of the standard code -> tag table.
func ToUnderscore() map[string]string { return maps.Clone(std.toUnderscore) }

// IsSupported reports whether code is a standard code or a speech-to-text tag.
// Matching is exact.
func IsSupported(code string) bool {
	return std.isSupported(code)
}

func (t tables) isSupported(code string) bool {
	if _, ok := t.codes[code]; ok {
		return true
	}
	_, ok := t.fromUnderscore[code]
	return ok
}

// Name resolves code to its display name. Speech-to-text tags are translated
// to their standard code first. Unresolved input is returned unchanged.
func Name(code string) string {
	return std.name(code)
}

func (t tables) name(code string) string {
	if name, ok := t.codes[code]; ok {
		return name
	}
	// only tag -> code is followed here; code -> tag never is
	if standard, ok := t.fromUnderscore[code]; ok {
		if name, ok := t.codes[standard]; ok {
			return name
		}
	}
	return code
}

// CodeForName returns the standard code for a display name. An exact match
// wins; otherwise the name is compared trimmed and case-insensitively.
func CodeForName(name string) (string, bool) {
	if code, ok := std.names[name]; ok {
		return code, true
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	for candidate, code := range std.names {
		if strings.EqualFold(candidate, trimmed) {
			return code, true
		}
	}
	return "", false
}

// Tag returns the speech-to-text tag for a standard code.
func Tag(code string) (string, bool) {
	tag, ok := std.toUnderscore[code]
	return tag, ok
}

// StandardCode returns the standard code for a speech-to-text tag.
func StandardCode(tag string) (string, bool) {
	code, ok := std.fromUnderscore[tag]
	return code, ok
}

// SortedCodes lists every standard code in ascending order.
func SortedCodes() []string {
	return slices.Sorted(maps.Keys(std.codes))
}

// SortedTags lists every speech-to-text tag in ascending order.
func SortedTags() []string {
	return slices.Sorted(maps.Keys(std.fromUnderscore))
}

// Entries returns every table row ordered by code.
func Entries() []Entry {
	out := make([]Entry, 0, len(std.codes))
	for _, code := range SortedCodes() {
		out = append(out, Entry{
			Code: code,
			Name: std.codes[code],
			Tag:  std.toUnderscore[code],
		})
	}
	return out
}
