package inspect

import (
	"os"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls the layout of listings.
type Config struct {
	LineWidth int            // maximum line length in terminal cells
	Context   *uax11.Context // context for measuring display width; nil for Latin text
	Colored   bool           // highlight positions with escape sequences
}

// DefaultLineWidth is used if the output is not a terminal.
const DefaultLineWidth = 65

// ConfigFromTerminal creates a Config for stdout. If stdout is a terminal,
// the line width follows the terminal's width and output is colored. The
// width context is derived from the user's environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = max(w, 10)
		}
	}
	tracer().Infof("inspect: line width %d, colored=%v", config.LineWidth, config.Colored)
	return config
}
