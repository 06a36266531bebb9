package config

// Range is the closed interval the secret number is drawn from.
type Range struct {
	Min uint32 `yaml:"min" env:"GUESS_MIN"`
	Max uint32 `yaml:"max" env:"GUESS_MAX"`
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n uint32) bool {
	return n >= r.Min && n <= r.Max
}

// Config represents a guess configuration file.
type Config struct {
	Range Range `yaml:"range"`
	// Seed fixes the number generator for a reproducible game. Zero means
	// draw a seed from OS entropy.
	Seed     int64  `yaml:"seed" env:"GUESS_SEED"`
	LogLevel string `yaml:"log_level" env:"GUESS_LOG_LEVEL"`
}
