package config

// Color modes for term output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete CLI configuration
type Config struct {
	Output  Output  `koanf:"output" toml:"output" yaml:"output"`
	Input   Input   `koanf:"input" toml:"input" yaml:"input"`
	Check   Check   `koanf:"check" toml:"check" yaml:"check"`
	Logging Logging `koanf:"logging" toml:"logging" yaml:"logging"`
}

// Output controls how parsed scripts are printed
type Output struct {
	// Format is a render format name; validated by the render package
	Format string `koanf:"format" toml:"format" yaml:"format"`
	Color  string `koanf:"color" toml:"color" yaml:"color"`
}

// Input controls how script files are read
type Input struct {
	Encoding string `koanf:"encoding" toml:"encoding" yaml:"encoding"`
}

// Check holds defaults for the check command
type Check struct {
	Strict bool `koanf:"strict" toml:"strict" yaml:"strict"`
}

// Logging holds logging related configuration
type Logging struct {
	// File enables the log file under the XDG state dir
	File bool `koanf:"file" toml:"file" yaml:"file"`
}
