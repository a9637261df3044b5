// Package registry provides the compiled-in default prompt registry. All
// default manifests are embedded and loaded eagerly at construction; the
// registry is read-only afterwards and must contain an entry for every
// prompt name the application issues.
package registry
