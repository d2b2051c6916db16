package main

import (
	"fmt"
	"os"

	"github.com/jruby-gems/rubygoals"
	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		fail(err)
	}

	logEmitter := rubygoals.NewLogEmitter(os.Stdout).WithVerbosity(config.Verbose)
	gem := pexec.NewExecutable("gem")

	install := rubygoals.Install(
		rubygoals.NewChangeGate(logEmitter),
		pexec.NewExecutable("bundle"),
		rubygoals.NewGemInstaller(gem, logEmitter),
		rubygoals.NewStubGenerator(rubygoals.NewFileModeMarker(), logEmitter),
		logEmitter,
		chronos.DefaultClock,
	)

	err = install(rubygoals.InstallContext{Config: config})
	if err != nil {
		fail(err)
	}
}

func loadConfig() (rubygoals.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return rubygoals.Config{}, err
	}

	path := os.Getenv("RUBYGOALS_CONFIG")
	if path == "" {
		path = rubygoals.ConfigFileSource
	}

	return rubygoals.NewConfigLoader(wd).Load(path)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
