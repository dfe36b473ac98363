package domain

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// Substitutions maps template placeholder names to concrete values.
type Substitutions map[string]string

// Expand replaces every $name in tmpl. Unknown names are an error.
func (s Substitutions) Expand(tmpl string) (string, error) {
	var missing []string

	out := os.Expand(tmpl, func(name string) string {
		value, ok := s[name]
		if !ok {
			missing = append(missing, name)
		}

		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s in %q", ErrUnknownPlaceholder, strings.Join(missing, ", "), tmpl)
	}

	return out, nil
}

// Renderer turns a finished draft into program text.
type Renderer struct {
	Indent   string
	Annotate bool
}

// Render substitutes lines, wraps them in the function skeleton and, when
// Annotate is set, appends each tag as an aligned trailing comment. tags must
// cover the full skeleton.
func (r Renderer) Render(lines []string, subs Substitutions, tags []m.Tag) (string, error) {
	body := make([]string, len(lines))

	for i, line := range lines {
		text, err := subs.Expand(line)
		if err != nil {
			return "", err
		}

		body[i] = r.Indent + text
	}

	// The body is injected last so its text is never re-expanded.
	text, err := Substitutions{PhBody: strings.Join(body, "\n")}.Expand(funcTemplate)
	if err != nil {
		return "", err
	}

	rendered := strings.Split(text, "\n")
	if len(rendered) != len(tags) {
		return "", fmt.Errorf("%w: rendered %d lines for %d tags", ErrInvariantViolation, len(rendered), len(tags))
	}

	if !r.Annotate {
		return text, nil
	}

	width := 0
	for _, line := range rendered {
		width = max(width, utf8.RuneCountInString(line))
	}

	for i, line := range rendered {
		rendered[i] = fmt.Sprintf("%-*s // %s", width, line, tags[i])
	}

	return strings.Join(rendered, "\n"), nil
}
