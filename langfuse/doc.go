// Package langfuse is a client for the Langfuse prompt-management API. It
// fetches the labeled version of a named prompt and creates new versions
// (used by prompt sync). Authentication is Basic auth from the public/secret
// key pair; when either key is missing the application simply does not
// construct a client. Successful fetches are cached per (name, label) with a
// short TTL and concurrent fetches for the same key are deduplicated.
package langfuse
