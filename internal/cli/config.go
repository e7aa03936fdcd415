package cli

// Fixed settings used by [DefaultConfig].
const (
	DefaultInputFile  = "input.txt"
	DefaultOutputFile = "output.txt"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// Config holds the files and logging settings for a run.
type Config struct {
	InputFile  string
	OutputFile string
	LogLevel   string
	LogFormat  string
}

// DefaultConfig returns the [Config] the CLI runs with.
func DefaultConfig() Config {
	return Config{
		InputFile:  DefaultInputFile,
		OutputFile: DefaultOutputFile,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Option modifies the [Config] used by [NewRootCmd].
type Option func(*Config)

// WithConfig replaces the default [Config].
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
