// Package filesystem provides directory traversal helpers used during
// project generation: a configurable tree walk, the placeholder-extension
// rename pass, and lookup of files by extension.
package filesystem
