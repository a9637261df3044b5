package prompts

import (
	"regexp"
	"strings"
)

// overrideVar matches one remote interpolation marker: {{token}} where the
// token contains no brace characters. [^{}]+ makes each match maximal.
var overrideVar = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Translate converts remote-store interpolation syntax to the local
// convention: every {{token}} becomes {token}. Text outside markers passes
// through unchanged, including stray single braces and unbalanced input.
// Remote text is untrusted authoring content, so translation never fails.
func Translate(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return overrideVar.ReplaceAllString(s, "{${1}}")
}

// TranslateMessages applies Translate to the content of every message.
func TranslateMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = Message{Role: m.Role, Content: Translate(m.Content)}
	}
	return out
}
