// Package linker regenerates the committed artifacts of the declaration
// repository: one index.d.ts of reference directives per directory under the
// scan root, and the root index.d.ts that chains the external declaration
// sources and flat-exports every collected namespace member as a module.
// Traversal is depth-first, synchronous, and aborts on the first filesystem
// error; artifacts are always rewritten in full, never merged.
package linker
