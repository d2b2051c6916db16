package rubygoals

// Launcher describes a gem executable that gets a dedicated launcher instead
// of one derived from the installed bin file.
type Launcher struct {
	// Gem is the gem that owns the executable.
	Gem string

	// Classpath makes the launcher load the setup script before anything else.
	Classpath bool

	// Fixed launchers are written before the bin directory is scanned and are
	// skipped during the scan.
	Fixed bool
}

var launcherTable = map[string]Launcher{
	"bundle":    {Gem: Bundler, Classpath: true, Fixed: true},
	"rmvn":      {Gem: RubyMaven},
	"gwt":       {Gem: RubyMaven},
	"jetty-run": {Gem: RubyMaven},
}
