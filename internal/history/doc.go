// Package history rewrites the invoking shell's on-disk history file so
// that an executed snippet appears as if the user typed it directly.
//
// Bash history files are plain text, one command per line. Zsh files are
// either plain or "extended" with a ": <epoch>:<duration>;" metadata
// prefix per entry; the variant is auto-detected by probing the last
// non-empty line. Rewrites target that line's command text only and go
// through a write-temp-then-rename so this program's own crash cannot
// truncate the file.
//
// The rewrite races the outer shell's own history flush. Sequencing
// (rewrite immediately before exec) keeps it close enough to correct for
// interactive use; callers treat every error here as a soft warning.
package history
