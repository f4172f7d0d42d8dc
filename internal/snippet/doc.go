// Package snippet defines the snippet model and the TOML loader that
// merges one or more snippet directories into a single validated
// registry.
//
// # File Format
//
// Snippet files are TOML tables holding an array of [[commands]]:
//
//	[[commands]]
//	description = "list files by size"
//	command = "du -sh * | sort -h"
//	tags = ["files"]
//
// description and command are required; tags are optional.
//
// # Registry Invariants
//
// Descriptions are unique across the whole merged registry (the selector
// resolves its echoed line back to a snippet by exact description match),
// and order is deterministic: directory order, then lexical file order,
// then declaration order.
package snippet
