package snippet

import "slices"

// Snippet is a named, reusable shell command.
type Snippet struct {
	// Description identifies the snippet. Unique across the whole
	// registry and the only text shown in the selector.
	Description string

	// Command is the literal shell command line.
	Command string

	// Tags are optional filter keywords. Never part of the identity.
	Tags []string

	// SourcePath is the TOML file this snippet was parsed from.
	SourcePath string
}

// HasTags reports whether the snippet carries every one of the given tags.
func (s *Snippet) HasTags(tags []string) bool {
	for _, tag := range tags {
		if !slices.Contains(s.Tags, tag) {
			return false
		}
	}
	return true
}

// Registry is the merged, ordered collection of snippets visible to one
// invocation. Order is file discovery order, then in-file declaration
// order.
type Registry []Snippet

// Descriptions returns the snippet descriptions in registry order.
func (r Registry) Descriptions() []string {
	out := make([]string, len(r))
	for i := range r {
		out[i] = r[i].Description
	}
	return out
}

// FilterByTags returns the snippets carrying all of the given tags.
// An empty tag list returns the registry unchanged.
func (r Registry) FilterByTags(tags []string) Registry {
	if len(tags) == 0 {
		return r
	}
	var out Registry
	for i := range r {
		if r[i].HasTags(tags) {
			out = append(out, r[i])
		}
	}
	return out
}

// FindByDescription returns the snippet with the given description.
func (r Registry) FindByDescription(description string) (*Snippet, bool) {
	for i := range r {
		if r[i].Description == description {
			return &r[i], true
		}
	}
	return nil, false
}
