package genconfig

// Message constants
const (
	MsgShort = "Generate a configuration file"
	MsgLong  = `The 'gen-config' command prints the commented default configuration,
or writes it to the config directory with --write. An existing config
file is never overwritten.

With --effective, the merged configuration (defaults, config file, and
environment) is dumped instead.`

	MsgExample = `  # Print the default configuration
  relfiles gen-config

  # Install it as your config file
  relfiles gen-config --write

  # Inspect what relfiles actually sees
  relfiles gen-config --effective`
)
