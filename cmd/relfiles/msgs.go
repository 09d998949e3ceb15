package main

// Message constants for the root command
const (
	MsgRootShort = "Open files related to the one you are working on"

	MsgRootLong = `relfiles locates the files related to a given file path using ordered
groups of wildcard patterns, and opens the whole family in a split-pane
editor layout.

Each group lists 2 to 4 path patterns. The wildcards %1..%9 capture any run
of characters and carry over to the sibling patterns, so matching
"src/parser.c" against "%1.c" makes "%1.h" resolve to "src/parser.h". The
first group whose files all exist wins; when nothing matches, relfiles does
nothing.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/relfiles/relfiles.toml)"
	MsgFlagColor   = "Color output: auto, always, or never"
)
