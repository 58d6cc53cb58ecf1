package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Tree file errors
	ErrLoadAt:   "line %d:%d: %v",
	ErrLoadFile: "%s: %v",

	// CLI - Usage and help
	MsgRootShort:    "verbose language front-end tools",
	MsgRootLong:     "Tools for inspecting verbose syntax trees.",
	MsgDumpShort:    "Print the syntax tree described by a tree file",
	MsgDumpLong:     "Load a syntax tree from a YAML or JSON tree file and print it as an indented tree.\nReads standard input when the file is \"-\".",
	MsgVersionShort: "Print version information",
	MsgVersion:      "verbose version %s",

	// CLI - Flags
	MsgFlagIndent:  "spaces per indentation level (overrides verbose.toml)",
	MsgFlagColor:   "colorize kind names: auto, always or never",
	MsgFlagConfig:  "path to verbose.toml (default: search upward from the input)",
	MsgFlagVerbose: "verbose output",

	// CLI - Errors
	ErrInputRequired:    "Error: a tree file is required",
	ErrCannotGetCwd:     "Error: cannot get current directory: %v",
	ErrCannotLoadConfig: "cannot load config: %v",
	ErrCannotLoadTree:   "cannot load tree: %v",
	ErrDumpFailed:       "cannot write tree: %v",
	ErrInvalidColor:     "invalid color mode %q, want auto, always or never",

	// CLI - Info messages
	MsgUsingConfig: "Using config: %s",
	MsgNoConfig:    "No verbose.toml found, using defaults",
	MsgLoading:     "Loading: %s",
	MsgLoaded:      "Loaded %d nodes",
}
