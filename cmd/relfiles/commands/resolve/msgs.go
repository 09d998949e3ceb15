package resolve

// Message constants
const (
	MsgShort = "Show a file's related files without opening them"
	MsgLong  = `The 'resolve' command runs the same matching as 'open' but only prints
the outcome: the winning group, the resolved paths, and a preview of the
pane layout. Machine-readable formats are available for scripting.`

	MsgExample = `  # Show the related files of parser.c
  relfiles resolve src/parser.c

  # Scripting
  relfiles resolve --format json src/parser.c
  relfiles resolve --format xml src/parser.c`
)
