package rubygoals

import (
	"bytes"
	"fmt"
	"time"

	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/pexec"
)

//go:generate faux --interface ChangeDetector --output fakes/change_detector.go
type ChangeDetector interface {
	ShouldRun(descriptor, outputDir string) (bool, error)
}

//go:generate faux --interface Executable --output fakes/executable.go
type Executable interface {
	Execute(pexec.Execution) error
}

//go:generate faux --interface Installer --output fakes/installer.go
type Installer interface {
	Install(GemRequest) error
}

//go:generate faux --interface BinStubGenerator --output fakes/bin_stub_generator.go
type BinStubGenerator interface {
	Generate(StubConfig) error
}

type InstallContext struct {
	Config Config
}

type InstallFunc func(InstallContext) error

// Install runs `bundle install` for the project unless its descriptor is
// unchanged since the last run, then regenerates the bin stubs.
func Install(
	gate ChangeDetector,
	bundle Executable,
	installer Installer,
	stubs BinStubGenerator,
	logger LogEmitter,
	clock chronos.Clock,
) InstallFunc {
	return func(context InstallContext) error {
		config := context.Config

		logger.Title("Bundle install")

		run, err := gate.ShouldRun(config.Descriptor, config.OutputDir)
		if err != nil {
			return err
		}

		if run {
			err = bundleInstall(config, bundle, installer, logger, clock)
			if err != nil {
				return err
			}
		} else {
			logger.Process("Reusing previous bundle install, %s is unchanged", config.Descriptor)
			logger.Break()
		}

		stubConfig := config.StubConfig()
		if stubConfig.BinStubs != "" {
			logger.Process("Generating bin stubs in %s", stubConfig.BinStubs)
			logger.Debug.Subprocess("Scanning %s", stubConfig.GemBinDir)
			logger.Break()
		}

		err = stubs.Generate(stubConfig)
		if err != nil {
			return err
		}

		logger.GemEnvironment(config.GemHome, config.GemPath)

		return nil
	}
}

func bundleInstall(config Config, bundle Executable, installer Installer, logger LogEmitter, clock chronos.Clock) error {
	if config.ProjectRoot == "" {
		logger.Process("No project root configured")
		return installer.Install(GemRequest{
			Name:       Bundler,
			Version:    config.Bundler.Version,
			Sources:    config.Sources,
			InstallDir: config.GemHome,
		})
	}

	args := []string{"install"}
	if config.Quiet() {
		args = append(args, "--quiet")
	}
	if config.Local() {
		args = append(args, "--local")
	}

	extra, err := ParseArgs(config.Bundler.Args, config.Args)
	if err != nil {
		return err
	}
	args = append(args, extra...)

	logger.Process("Executing bundle install")
	logger.Invocation("bundle", args)

	buffer := bytes.NewBuffer(nil)
	duration, err := clock.Measure(func() error {
		return bundle.Execute(pexec.Execution{
			Args:   args,
			Dir:    config.LaunchDirectory(),
			Stdout: buffer,
			Stderr: buffer,
		})
	})
	if err != nil {
		logger.Detail("%s", buffer.String())
		return fmt.Errorf("failed to execute bundle install: %w", err)
	}

	logger.Debug.Detail("%s", buffer.String())
	logger.Action("Completed in %s", duration.Round(time.Millisecond))
	logger.Break()

	return nil
}
