// Package promptsync pushes the compiled-in default prompts to the remote
// prompt store so they exist there for editing. Local single-brace
// placeholders are converted to the remote double-brace convention; prompts
// whose current labeled remote version is content-identical are skipped.
// One-shot: syncing has no effect on the resolution path.
package promptsync
