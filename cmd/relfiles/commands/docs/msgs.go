package docs

// Message constants
const (
	MsgShort = "Show the relfiles usage guide"
	MsgLong  = `The 'docs' command renders the full usage guide in the terminal:
pattern syntax, group configuration, and how matches resolve.`
)
