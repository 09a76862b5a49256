package mines

import "fmt"

// ConfigError reports a board that cannot be constructed. It is fatal at
// startup and never produced by moves on a running board.
type ConfigError struct {
	message string
}

func configErrorf(format string, args ...any) ConfigError {
	return ConfigError{fmt.Sprintf(format, args...)}
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return "invalid board: " + e.message
}
