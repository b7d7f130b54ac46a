// Package dashboard replaces the CSV payload embedded in a static HTML
// dashboard. The payload lives in a JavaScript template literal:
//
//	const rawData = `...`;
//
// Everything outside the literal is left byte for byte as it was.
package dashboard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultVariable is the name of the JavaScript constant holding the CSV.
const DefaultVariable = "rawData"

var (
	// ErrPlaceholderNotFound indicates the HTML has no `const <name> = `...`;` block.
	ErrPlaceholderNotFound = errors.New("placeholder not found")

	// ErrUnsafePayload indicates the payload contains a backtick, which would
	// end the template literal early.
	ErrUnsafePayload = errors.New("payload cannot be embedded in a template literal")
)

var rawData = Placeholder{re: compile(DefaultVariable)}

func compile(variable string) *regexp.Regexp {
	return regexp.MustCompile(`(const\s+` + regexp.QuoteMeta(variable) + "\\s*=\\s*`)([^`]*)(`;)")
}

// Placeholder locates the template literal assigned to a named constant.
type Placeholder struct {
	re *regexp.Regexp
}

// NewPlaceholder returns a Placeholder for `const <variable> = `...`;`. An
// empty variable means DefaultVariable.
func NewPlaceholder(variable string) Placeholder {
	if variable == "" || variable == DefaultVariable {
		return rawData
	}
	return Placeholder{re: compile(variable)}
}

// Patch replaces the payload of the first placeholder in html and returns the
// result. Later occurrences, if any, are left alone.
func (p Placeholder) Patch(html, payload string) (string, error) {
	loc := p.re.FindStringSubmatchIndex(html)
	if loc == nil {
		return "", ErrPlaceholderNotFound
	}

	if err := CheckPayload(payload); err != nil {
		return "", err
	}

	// loc[4]:loc[5] is the payload group
	var b strings.Builder
	b.Grow(len(html) - (loc[5] - loc[4]) + len(payload))
	b.WriteString(html[:loc[4]])
	b.WriteString(payload)
	b.WriteString(html[loc[5]:])

	return b.String(), nil
}

// Extract returns the payload of the first placeholder in html.
func (p Placeholder) Extract(html string) (string, error) {
	match := p.re.FindStringSubmatch(html)
	if match == nil {
		return "", ErrPlaceholderNotFound
	}
	return match[2], nil
}

// Count returns the number of placeholders in html.
func (p Placeholder) Count(html string) int {
	return len(p.re.FindAllStringIndex(html, -1))
}

// CheckPayload rejects text that cannot sit verbatim inside a template
// literal. "${" is allowed: it is stored as written.
func CheckPayload(payload string) error {
	if i := strings.IndexByte(payload, '`'); i >= 0 {
		return fmt.Errorf("%w: backtick at offset %d", ErrUnsafePayload, i)
	}
	return nil
}
