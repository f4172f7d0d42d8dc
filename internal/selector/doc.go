// Package selector presents snippet candidates through an interactive
// filter and maps the result back to a snippet.
//
// # Subprocess Protocol
//
// The configured filter_command is launched with the candidate lines on
// its stdin (UTF-8, one description per line, newline-terminated, in
// registry order) and its stdout captured. The echoed line, trimmed of
// its trailing newline, is matched against the descriptions by exact
// equality. A non-zero exit or empty stdout means the user cancelled;
// that is a normal outcome, not an error.
//
// Recognized filter tools (fzf, sk, peco, fzy) get a pre-populated query
// passed via their query flag; unrecognized tools get no extra flag.
//
// The special filter_command "builtin" uses an embedded bubbletea list
// selector instead of spawning a subprocess.
package selector
