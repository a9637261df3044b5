// Package catalog stores the list of selectable LLM models: a sqlite-backed
// table seeded from embedded static defaults and refreshable from the
// OpenRouter model catalog. The panel-facing view groups models by provider,
// providers sorted by name.
package catalog
