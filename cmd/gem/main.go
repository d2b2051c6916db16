package main

import (
	"fmt"
	"os"

	"github.com/jruby-gems/rubygoals"
	"github.com/paketo-buildpacks/packit/v2/pexec"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fail(err)
	}

	path := os.Getenv("RUBYGOALS_CONFIG")
	if path == "" {
		path = rubygoals.ConfigFileSource
	}

	config, err := rubygoals.NewConfigLoader(wd).Load(path)
	if err != nil {
		fail(err)
	}

	logEmitter := rubygoals.NewLogEmitter(os.Stdout).WithVerbosity(config.Verbose)

	err = rubygoals.Exec(pexec.NewExecutable("gem"), logEmitter)(rubygoals.ExecContext{Config: config})
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
