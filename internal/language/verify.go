package language

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistent marks a table row that breaks the data-entry conventions.
var ErrInconsistent = errors.New("inconsistent language table")

// Verify checks the shipped tables. Every problem found is returned, joined,
// and each one matches ErrInconsistent.
func Verify() error {
	return verifyRows(languages)
}

func verifyRows(rows []entry) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...)))
	}

	codes := make(map[string]struct{}, len(rows))
	names := make(map[string]string, len(rows))
	tags := make(map[string]string, len(rows))
	for i, e := range rows {
		if strings.TrimSpace(e.code) == "" {
			fail("row %d: empty code", i)
			continue
		}
		if _, ok := codes[e.code]; ok {
			fail("code %q listed twice", e.code)
		}
		codes[e.code] = struct{}{}

		if strings.TrimSpace(e.name) == "" {
			fail("code %q: empty name", e.code)
		} else {
			folded := strings.ToLower(e.name)
			if prev, ok := names[folded]; ok {
				fail("name %q used by %q and %q", e.name, prev, e.code)
			}
			names[folded] = e.code
		}

		if e.tag == "" {
			continue
		}
		if !wellFormedTag(e.tag) {
			fail("code %q: malformed tag %q", e.code, e.tag)
		}
		if prev, ok := tags[e.tag]; ok {
			fail("tag %q used by %q and %q", e.tag, prev, e.code)
		}
		tags[e.tag] = e.code
	}

	t := buildTables(rows)
	for tag, code := range t.fromUnderscore {
		if _, ok := t.codes[code]; !ok {
			fail("tag %q points at unknown code %q", tag, code)
		}
		if back := t.toUnderscore[code]; back != tag {
			fail("tag %q does not round trip (code %q maps back to %q)", tag, code, back)
		}
	}
	for code, name := range t.codes {
		if back := t.names[name]; back != code {
			fail("name %q of code %q maps back to %q", name, code, back)
		}
	}

	return errors.Join(errs...)
}

// wellFormedTag accepts "__" + lowercase ASCII letters + "__".
func wellFormedTag(tag string) bool {
	inner, ok := strings.CutPrefix(tag, "__")
	if !ok {
		return false
	}
	inner, ok = strings.CutSuffix(inner, "__")
	if !ok || inner == "" {
		return false
	}
	for _, r := range inner {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
