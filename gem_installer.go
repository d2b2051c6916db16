package rubygoals

import (
	"bytes"
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/paketo-buildpacks/packit/v2/pexec"
)

// GemRequest names a gem to install and where to install it from.
type GemRequest struct {
	Name string

	// Version pins the gem. Pinning is deprecated in favour of declaring the
	// gem as a dependency of the project.
	Version string

	Sources    []string
	InstallDir string
}

// GemInstaller installs a single gem with `gem install`.
type GemInstaller struct {
	gem    Executable
	logger LogEmitter
}

func NewGemInstaller(gem Executable, logger LogEmitter) GemInstaller {
	return GemInstaller{
		gem:    gem,
		logger: logger,
	}
}

func (i GemInstaller) Install(request GemRequest) error {
	args := []string{"install", request.Name}

	if request.Version != "" {
		version, err := semver.NewVersion(request.Version)
		if err != nil {
			return fmt.Errorf("invalid %s version %q: %w", request.Name, request.Version, err)
		}

		i.logger.Warning("Pinning the %s version is deprecated. Declare a gem dependency with the desired version instead.", request.Name)
		args = append(args, "--version", version.Original())
	}

	if request.InstallDir != "" {
		args = append(args, "--install-dir", request.InstallDir)
	}

	if len(request.Sources) > 0 {
		args = append(args, "--clear-sources")
		for _, source := range request.Sources {
			args = append(args, "--source", source)
		}
	}

	args = append(args, "--no-document")

	i.logger.Process("Installing %s", request.Name)
	i.logger.Invocation("gem", args)

	buffer := bytes.NewBuffer(nil)
	err := i.gem.Execute(pexec.Execution{
		Args:   args,
		Stdout: buffer,
		Stderr: buffer,
	})
	if err != nil {
		i.logger.Detail("%s", buffer.String())
		return fmt.Errorf("failed to install %s: %w", request.Name, err)
	}

	i.logger.Debug.Detail("%s", buffer.String())

	return nil
}
