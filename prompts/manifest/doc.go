// Package manifest parses YAML prompt manifests into prompts.Template.
// A manifest carries an id, an optional version and description, and the
// chat messages with their roles; message content is authored in the local
// single-brace placeholder convention.
package manifest
