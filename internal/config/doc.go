// Package config handles loading of cmdy configuration.
//
// Configuration is layered: compiled defaults, then the global file at
// ~/.config/cmdy/config.toml (absent file means defaults, malformed file
// is a fatal error), then CLI flag overrides applied field-by-field by
// the commands. Unknown keys in the file are ignored so older binaries
// keep working with newer configs.
//
// # Key Settings
//
//   - filter_command: shell command line that launches the interactive
//     selector (default: fzf; "builtin" for the embedded selector)
//   - directories: extra snippet directories scanned after
//     ~/.config/cmdy/commands
//   - overwrite_shell_command: rewrite the shell's last history entry
//     with the executed snippet (default: false)
package config
