package groups

// Message constants
const (
	MsgShort = "List the registered pattern groups"
	MsgLong  = `The 'groups' command prints the registered related-file groups in
priority order: earlier groups win when more than one matches a path.`

	MsgExample = `  # Show all groups
  relfiles groups

  # Scripting
  relfiles groups --format yaml`
)
