package rubygoals

const (
	// Bundler is the name of the gem that provides the bundle executable.
	Bundler = "bundler"

	// RubyMaven is the name of the gem that provides rmvn and friends.
	RubyMaven = "ruby-maven"

	// DigestSuffix is appended to the descriptor file name to form the name of
	// the digest record written to the output directory.
	DigestSuffix = ".sha1"

	// SetupScript is the name of the generated script that registers the
	// classpath and the gem environment.
	SetupScript = "setup"

	// ConfigFileSource is the default configuration file name.
	ConfigFileSource = "rubygoals.yml"

	// bootstrapJarFragment names the classpath entry that must never be
	// registered by the setup script.
	bootstrapJarFragment = "jruby-complete-"
)
