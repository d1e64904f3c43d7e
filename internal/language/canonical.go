package language

import (
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Canonicalize maps loose input (BCP 47 tags, locale names such as "pt_BR",
// mixed case) onto a standard code. Exact codes and speech-to-text tags are
// accepted as-is; anything else is reduced to its base language and must land
// in the standard table.
func Canonicalize(input string) (string, bool) {
	if _, ok := std.codes[input]; ok {
		return input, true
	}
	if code, ok := std.fromUnderscore[input]; ok {
		return code, true
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}
	lowered := strings.ToLower(trimmed)
	if _, ok := std.codes[lowered]; ok {
		return lowered, true
	}
	if code, ok := std.fromUnderscore[lowered]; ok {
		return code, true
	}

	tag, err := xlanguage.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := base.String()
	if _, ok := std.codes[code]; ok {
		return code, true
	}
	return "", false
}

// Label returns a human-readable label such as "Spanish (es)". Codes outside
// the tables fall back to CLDR English display names.
func Label(code string) string {
	if code == "" {
		return ""
	}
	if IsSupported(code) {
		return fmt.Sprintf("%s (%s)", Name(code), code)
	}

	tag, err := xlanguage.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return fmt.Sprintf("language '%s'", code)
	}
	name := display.English.Tags().Name(tag)
	if name == "" || strings.EqualFold(name, code) {
		return fmt.Sprintf("language '%s'", code)
	}
	return fmt.Sprintf("%s (%s)", name, code)
}

// Mismatch is a table row whose name differs from the CLDR English name.
type Mismatch struct {
	Code  string `json:"code"`
	Table string `json:"table"`
	CLDR  string `json:"cldr"`
}

// Audit compares every table name with CLDR. The result is informational:
// table names are chosen for the translation backends and may legitimately
// differ.
func Audit() []Mismatch {
	return auditRows(languages)
}

func auditRows(rows []entry) []Mismatch {
	namer := display.English.Languages()
	var out []Mismatch
	for _, e := range rows {
		var cldr string
		if tag, err := xlanguage.Parse(e.code); err == nil {
			cldr = namer.Name(tag)
		}
		if cldr == e.name {
			continue
		}
		out = append(out, Mismatch{Code: e.code, Table: e.name, CLDR: cldr})
	}
	return out
}
