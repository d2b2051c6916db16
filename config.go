package rubygoals

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/fs"
	"gopkg.in/yaml.v2"
)

// Config carries everything the install and gem goals need. It is assembled
// by a ConfigLoader from a YAML file and the environment.
type Config struct {
	Descriptor  string `yaml:"descriptor"`
	ProjectRoot string `yaml:"project_root"`
	OutputDir   string `yaml:"output_dir"`
	LaunchDir   string `yaml:"launch_dir"`

	Bundler struct {
		Args     string `yaml:"args"`
		Local    *bool  `yaml:"local"`
		Quiet    *bool  `yaml:"quiet"`
		Version  string `yaml:"version"`
		BinStubs string `yaml:"binstubs"`
		SheBang  string `yaml:"shebang"`
	} `yaml:"bundler"`

	Gem struct {
		Args string `yaml:"args"`
	} `yaml:"gem"`

	Args      string   `yaml:"args"`
	GemHome   string   `yaml:"gem_home"`
	GemPath   []string `yaml:"gem_path"`
	GemBinDir string   `yaml:"gem_bin_dir"`
	Classpath []string `yaml:"classpath"`
	Sources   []string `yaml:"sources"`
	Verbose   bool     `yaml:"verbose"`
}

// LaunchDirectory is the working directory external commands run in.
func (c Config) LaunchDirectory() string {
	if c.LaunchDir != "" {
		return c.LaunchDir
	}

	return c.ProjectRoot
}

// Local reports whether bundle install should pass --local.
func (c Config) Local() bool {
	return c.Bundler.Local == nil || *c.Bundler.Local
}

// Quiet reports whether bundle install should pass --quiet.
func (c Config) Quiet() bool {
	return c.Bundler.Quiet == nil || *c.Bundler.Quiet
}

// StubConfig returns the part of the configuration the StubGenerator reads.
func (c Config) StubConfig() StubConfig {
	return StubConfig{
		BinStubs:  c.Bundler.BinStubs,
		SheBang:   c.Bundler.SheBang,
		Classpath: c.Classpath,
		GemHome:   c.GemHome,
		GemPath:   c.GemPath,
		GemBinDir: c.GemBinDir,
	}
}

type ConfigLoader struct {
	getenv     func(string) string
	workingDir string
}

func NewConfigLoader(workingDir string) ConfigLoader {
	return ConfigLoader{
		getenv:     os.Getenv,
		workingDir: workingDir,
	}
}

// WithEnv replaces the environment lookup, mostly for tests.
func (l ConfigLoader) WithEnv(getenv func(string) string) ConfigLoader {
	l.getenv = getenv
	return l
}

// Load reads the YAML file at path, applies environment overrides and fills in
// defaults. A missing file is not an error.
func (l ConfigLoader) Load(path string) (Config, error) {
	var config Config

	file, err := os.Open(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}

	if err == nil {
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	err = l.applyEnv(&config)
	if err != nil {
		return Config{}, err
	}

	err = l.applyDefaults(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func (l ConfigLoader) applyEnv(config *Config) error {
	strs := map[string]*string{
		"RUBYGOALS_DESCRIPTOR":     &config.Descriptor,
		"RUBYGOALS_PROJECT_ROOT":   &config.ProjectRoot,
		"RUBYGOALS_OUTPUT_DIR":     &config.OutputDir,
		"RUBYGOALS_LAUNCH_DIR":     &config.LaunchDir,
		"RUBYGOALS_ARGS":           &config.Args,
		"RUBYGOALS_GEM_BIN_DIR":    &config.GemBinDir,
		"BUNDLER_ARGS":             &config.Bundler.Args,
		"BUNDLER_VERSION":          &config.Bundler.Version,
		"BUNDLER_BINSTUBS":         &config.Bundler.BinStubs,
		"BUNDLER_BINSTUBS_SHEBANG": &config.Bundler.SheBang,
		"GEM_ARGS":                 &config.Gem.Args,
		"GEM_HOME":                 &config.GemHome,
	}
	for name, field := range strs {
		if value := l.getenv(name); value != "" {
			*field = value
		}
	}

	lists := map[string]*[]string{
		"GEM_PATH":            &config.GemPath,
		"RUBYGOALS_CLASSPATH": &config.Classpath,
	}
	for name, field := range lists {
		if value := l.getenv(name); value != "" {
			*field = filepath.SplitList(value)
		}
	}

	if value := l.getenv("RUBYGOALS_SOURCES"); value != "" {
		config.Sources = nil
		for _, source := range strings.Split(value, ",") {
			if source = strings.TrimSpace(source); source != "" {
				config.Sources = append(config.Sources, source)
			}
		}
	}

	bools := map[string]**bool{
		"BUNDLER_LOCAL": &config.Bundler.Local,
		"BUNDLER_QUIET": &config.Bundler.Quiet,
	}
	for name, field := range bools {
		value := l.getenv(name)
		if value == "" {
			continue
		}

		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		*field = &b
	}

	if value := l.getenv("JRUBY_VERBOSE"); value != "" {
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("failed to parse JRUBY_VERBOSE: %w", err)
		}
		config.Verbose = verbose
	}

	return nil
}

func (l ConfigLoader) applyDefaults(config *Config) error {
	if config.Descriptor == "" {
		config.Descriptor = "pom.xml"
	}

	if !filepath.IsAbs(config.Descriptor) {
		config.Descriptor = filepath.Join(l.workingDir, config.Descriptor)
	}

	if config.ProjectRoot == "" {
		exists, err := fs.Exists(config.Descriptor)
		if err != nil {
			return fmt.Errorf("failed to stat descriptor: %w", err)
		}

		if exists {
			config.ProjectRoot = filepath.Dir(config.Descriptor)
		}
	}

	if config.OutputDir == "" {
		root := config.ProjectRoot
		if root == "" {
			root = l.workingDir
		}
		config.OutputDir = filepath.Join(root, "target")
	}

	if config.LaunchDir == "" && config.ProjectRoot == "" {
		config.LaunchDir = l.workingDir
	}

	if config.Bundler.BinStubs == "" {
		config.Bundler.BinStubs = filepath.Join(config.OutputDir, "bin")
	}

	if config.Bundler.SheBang == "" {
		config.Bundler.SheBang = "jruby"
	}

	if config.GemBinDir == "" && config.GemHome != "" {
		config.GemBinDir = filepath.Join(config.GemHome, "bin")
	}

	return nil
}
