// Package prompts provides two-tier prompt template resolution for the
// hedge-fund agents. Defaults are compiled in and always present; when the
// remote prompt store is configured, the labeled remote version wins and its
// interpolation syntax is translated to the local single-brace convention.
package prompts
