package config

// CliOnlyOptions carries values that are only provided via command line flags,
// never via the config file.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}
