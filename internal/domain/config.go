package domain

// DefaultCountWidth is the minimum field width of the count prefix.
const DefaultCountWidth = 4

// Config represents the uniqr settings resolved from defaults, the optional
// config file and command-line flags.
type Config struct {
	Count      bool
	CountWidth int
	Log        LogConfig
}

type LogConfig struct {
	Debug bool
	File  string
}

// DefaultConfig provides the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Count:      false,
		CountWidth: DefaultCountWidth,
	}
}
