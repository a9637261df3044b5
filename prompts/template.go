package prompts

import (
	"fmt"
	"strings"
)

// Format renders every message, substituting {name} placeholders from vars.
// {{ and }} are escapes for literal braces (template bodies embed JSON
// examples). A brace sequence that is not an escape and not a well-formed
// placeholder passes through unchanged. Returns a VariableError wrapping
// ErrMissingVariable when a referenced variable is not in vars.
func (t *Template) Format(vars map[string]any) ([]Message, error) {
	out := make([]Message, len(t.Messages))
	for i, m := range t.Messages {
		text, err := formatContent(m.Content, vars, t.Name)
		if err != nil {
			return nil, err
		}
		out[i] = Message{Role: m.Role, Content: text}
	}
	return out, nil
}

// Vars returns the placeholder names referenced by the template, in first
// occurrence order. Useful for inspecting drift between a remote override
// and the default; Resolve never validates this itself.
func (t *Template) Vars() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range t.Messages {
		for _, name := range extractVars(m.Content) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func formatContent(s string, vars map[string]any, tplName string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '{' && i+1 < len(s) && s[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case s[i] == '}' && i+1 < len(s) && s[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case s[i] == '{':
			name, end, ok := scanPlaceholder(s, i+1)
			if !ok {
				b.WriteByte('{')
				i++
				continue
			}
			v, present := vars[name]
			if !present {
				return "", &VariableError{Variable: name, Template: tplName, Err: ErrMissingVariable}
			}
			fmt.Fprintf(&b, "%v", v)
			i = end + 1
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String(), nil
}

func extractVars(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		switch {
		case s[i] == '{' && i+1 < len(s) && s[i+1] == '{':
			i += 2
		case s[i] == '}' && i+1 < len(s) && s[i+1] == '}':
			i += 2
		case s[i] == '{':
			name, end, ok := scanPlaceholder(s, i+1)
			if !ok {
				i++
				continue
			}
			out = append(out, name)
			i = end + 1
		default:
			i++
		}
	}
	return out
}

// scanPlaceholder reads an identifier starting at i and reports the name, the
// index of the closing brace, and whether a well-formed {identifier} was
// found. Identifiers are ASCII letters, digits, and underscores, not starting
// with a digit.
func scanPlaceholder(s string, i int) (string, int, bool) {
	j := i
	for j < len(s) && isIdentByte(s[j], j == i) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '}' {
		return "", 0, false
	}
	return s[i:j], j, true
}

func isIdentByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
