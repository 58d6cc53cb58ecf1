package i18n

// Message keys for tree file loading
const (
	ErrLoadAt   = "treefile.load_at"   // args: line, column, error
	ErrLoadFile = "treefile.load_file" // args: path, error
)

// Message keys for CLI
const (
	// Usage and help
	MsgRootShort    = "cli.root_short"
	MsgRootLong     = "cli.root_long"
	MsgDumpShort    = "cli.dump_short"
	MsgDumpLong     = "cli.dump_long"
	MsgVersionShort = "cli.version_short"
	MsgVersion      = "cli.version" // args: version

	// Flags
	MsgFlagIndent  = "cli.flag_indent"
	MsgFlagColor   = "cli.flag_color"
	MsgFlagConfig  = "cli.flag_config"
	MsgFlagVerbose = "cli.flag_verbose"

	// Errors
	ErrInputRequired    = "cli.input_required"
	ErrCannotGetCwd     = "cli.cannot_get_cwd"     // args: error
	ErrCannotLoadConfig = "cli.cannot_load_config" // args: error
	ErrCannotLoadTree   = "cli.cannot_load_tree"   // args: error
	ErrDumpFailed       = "cli.dump_failed"        // args: error
	ErrInvalidColor     = "cli.invalid_color"      // args: value

	// Info messages
	MsgUsingConfig = "cli.using_config" // args: configPath
	MsgNoConfig    = "cli.no_config"
	MsgLoading     = "cli.loading" // args: path
	MsgLoaded      = "cli.loaded"  // args: nodeCount
)
