package prompts

import "slices"

// Role is the message role in a chat prompt template.
type Role string

// Chat message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// NormalizeRole maps an authoring role string onto a canonical Role.
// "human" (the LangChain-style alias used in remote prompt content) maps to
// RoleUser. The second return value is false for unknown roles.
func NormalizeRole(s string) (Role, bool) {
	switch s {
	case string(RoleSystem):
		return RoleSystem, true
	case string(RoleUser), "human":
		return RoleUser, true
	case string(RoleAssistant):
		return RoleAssistant, true
	default:
		return "", false
	}
}

// Message is a single chat message. Content may hold {variable} placeholders
// in the local single-brace convention; {{ and }} escape literal braces.
type Message struct {
	Role    Role
	Content string
}

// Template is a named chat prompt template. Templates returned by registries
// and resolvers are copies; callers may inspect them freely but should treat
// them as immutable.
type Template struct {
	Name     string
	Version  string
	Messages []Message
}

// Clone returns a copy with a cloned message slice so callers cannot mutate
// a cached template.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	return &Template{
		Name:     t.Name,
		Version:  t.Version,
		Messages: slices.Clone(t.Messages),
	}
}
