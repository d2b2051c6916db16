package rubygoals

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/fs"
)

//go:generate faux --interface ExecutableMarker --output fakes/executable_marker.go
type ExecutableMarker interface {
	MarkExecutable(path string) error
}

// StubConfig describes where bin stubs go and what environment they carry.
type StubConfig struct {
	// BinStubs is the output directory. Nothing is generated when it is empty.
	BinStubs string

	SheBang   string
	Classpath []string
	GemHome   string
	GemPath   []string

	// GemBinDir is scanned for installed gem executables.
	GemBinDir string
}

type StubGenerator struct {
	marker ExecutableMarker
	logger LogEmitter
}

func NewStubGenerator(marker ExecutableMarker, logger LogEmitter) StubGenerator {
	return StubGenerator{
		marker: marker,
		logger: logger,
	}
}

// Generate writes the setup script and the fixed launchers, then derives a
// launcher for each executable in the gem bin directory that does not have
// one yet.
func (g StubGenerator) Generate(config StubConfig) error {
	if config.BinStubs == "" {
		return nil
	}

	err := os.MkdirAll(config.BinStubs, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create bin stubs directory: %w", err)
	}

	err = g.writeFixed(config, "bundle", launcherTable["bundle"])
	if err != nil {
		return err
	}

	var setup RubyScript
	setup.Prolog().HistoryLog().Classpath(config.Classpath).GemEnvironment(config.GemHome, config.GemPath)

	err = g.write(filepath.Join(config.BinStubs, SetupScript), setup.String(), false)
	if err != nil {
		return err
	}

	if config.GemBinDir == "" {
		return nil
	}

	files, err := os.ReadDir(config.GemBinDir)
	if err != nil {
		if os.IsNotExist(err) {
			g.logger.Debug.Subprocess("No gem executables found in %s", config.GemBinDir)
			return nil
		}

		return fmt.Errorf("failed to list gem executables: %w", err)
	}

	prefix := stubPrefix(config.SheBang)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		if launcher, ok := launcherTable[name]; ok {
			if launcher.Fixed {
				continue
			}

			err = g.writeFixed(config, name, launcher)
			if err != nil {
				return err
			}

			continue
		}

		path := filepath.Join(config.BinStubs, name)
		exists, err := fs.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to stat bin stub: %w", err)
		}

		if exists {
			continue
		}

		content, err := os.ReadFile(filepath.Join(config.GemBinDir, name))
		if err != nil {
			return fmt.Errorf("failed to read gem executable: %w", err)
		}

		g.logger.Debug.Subprocess("Creating bin stub %s", path)

		err = g.write(path, prefix+DeriveInvocation(string(content))+lineSeparator, true)
		if err != nil {
			return err
		}
	}

	return nil
}

func (g StubGenerator) writeFixed(config StubConfig, executable string, launcher Launcher) error {
	var script RubyScript
	script.SheBang(config.SheBang)
	if launcher.Classpath {
		script.LoadSetup()
	}
	script.HistoryLog().GemEnvironment(config.GemHome, config.GemPath).BinPath(launcher.Gem, executable)

	return g.write(filepath.Join(config.BinStubs, executable), script.String(), true)
}

func (g StubGenerator) write(path, content string, executable bool) error {
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	if executable {
		err = g.marker.MarkExecutable(path)
		if err != nil {
			g.logger.Warning("can not set executable flag: %s (%s)", path, err)
		}
	}

	return nil
}

// DeriveInvocation returns the last non-empty line of a RubyGems generated
// executable with its version argument removed.
func DeriveInvocation(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] != "" {
			last = lines[i]
			break
		}
	}

	return strings.Replace(last, ", version", "", 1)
}

func stubPrefix(sheBang string) string {
	var script RubyScript
	script.SheBang(sheBang).LoadSetup().Line().
		Line("require 'rubygems'").
		Line("require 'bundler/setup'").
		Line()

	return script.String()
}
