package open

// Message constants
const (
	MsgShort = "Open a file's related files in a pane layout"
	MsgLong  = `The 'open' command finds the files related to the given path and opens
them together in the configured editor:

  2 files: side-by-side panes
  3 files: full-height left pane, right column split top/bottom
  4 files: both columns split top/bottom

Focus lands on the counterpart of the file you came from. When no group
matches, or a group's files are incomplete, nothing happens.`

	MsgExample = `  # Open parser.c together with parser.h
  relfiles open src/parser.c

  # See what would be opened
  relfiles open --dry-run src/parser.c`
)
