package rubygoals

import (
	"fmt"
	"io"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/scribe"
)

type LogEmitter struct {
	// Emitter is embedded and therefore delegates all of its functions to the
	// LogEmitter.
	scribe.Emitter
}

func NewLogEmitter(output io.Writer) LogEmitter {
	return LogEmitter{
		Emitter: scribe.NewEmitter(output),
	}
}

// WithVerbosity returns a LogEmitter that also prints debug output when
// verbose is true.
func (l LogEmitter) WithVerbosity(verbose bool) LogEmitter {
	if verbose {
		l.Emitter = l.Emitter.WithLevel("DEBUG")
	}

	return l
}

func (l LogEmitter) Invocation(executable string, args []string) {
	l.Subprocess("Running '%s'", strings.TrimSpace(fmt.Sprintf("%s %s", executable, strings.Join(args, " "))))
}

func (l LogEmitter) Warning(format string, v ...interface{}) {
	l.Subprocess("WARNING: %s", fmt.Sprintf(format, v...))
}

func (l LogEmitter) GemEnvironment(gemHome string, gemPath []string) {
	if gemHome == "" && len(gemPath) == 0 {
		return
	}

	l.Process("Configuring gem environment")
	if gemHome != "" {
		l.Subprocess("GEM_HOME -> %q", gemHome)
	}
	if len(gemPath) > 0 {
		l.Subprocess("GEM_PATH -> %q", strings.Join(gemPath, pathListSeparator))
	}
	l.Break()
}
