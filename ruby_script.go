package rubygoals

import (
	"os"
	"runtime"
	"strings"
)

var (
	lineSeparator     = newline(runtime.GOOS)
	pathListSeparator = string(os.PathListSeparator)
)

func newline(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}

	return "\n"
}

// RubyScript accumulates the text of a generated script.
type RubyScript struct {
	builder strings.Builder
}

func (s *RubyScript) Append(values ...string) *RubyScript {
	for _, value := range values {
		s.builder.WriteString(value)
	}

	return s
}

func (s *RubyScript) Line(values ...string) *RubyScript {
	s.Append(values...)
	s.builder.WriteString(lineSeparator)
	return s
}

func (s *RubyScript) String() string {
	return s.builder.String()
}

func (s *RubyScript) SheBang(interpreter string) *RubyScript {
	return s.Line("#!/usr/bin/env ", interpreter)
}

func (s *RubyScript) Prolog() *RubyScript {
	return s.Line("require %(java) if defined? JRUBY_VERSION").Line()
}

// LoadSetup loads the setup script that sits next to the real path of the
// running launcher.
func (s *RubyScript) LoadSetup() *RubyScript {
	return s.
		Line("require 'pathname'").
		Line("load(File.expand_path('../", SetupScript, "', Pathname.new(__FILE__).realpath))")
}

func (s *RubyScript) HistoryLog() *RubyScript {
	return s.
		Line("log = File.join('log', 'history.log')").
		Line("if File.exists? File.dirname(log)").
		Line("  File.open(log, 'a') do |f|").
		Line(`    f.puts "#{$0.sub(/.*\//, '')} #{ARGV.join ' '}"`).
		Line("  end").
		Line("end").
		Line()
}

// Classpath registers every element with the JRuby class loader. Elements are
// interpolated without escaping.
func (s *RubyScript) Classpath(elements []string) *RubyScript {
	s.Line("if defined? JRUBY_VERSION").
		Line("  # Set up the classpath for running outside of the build").
		Line().
		Line("  def add_classpath_element(element)").
		Line("    JRuby.runtime.jruby_class_loader.addURL( Java::java.net::URL.new( element ) )").
		Line("  end").
		Line()

	for _, element := range elements {
		if element == bootstrapJarFragment {
			continue
		}
		s.Line("  add_classpath_element(%Q( file://", NormalizeClasspathElement(element), " ))")
	}

	return s.Line("end").Line()
}

// GemEnvironment exports GEM_HOME and GEM_PATH. Nothing is written when
// neither is configured. Values are interpolated without escaping.
func (s *RubyScript) GemEnvironment(gemHome string, gemPath []string) *RubyScript {
	if gemHome == "" && len(gemPath) == 0 {
		return s
	}

	s.Line("# Set up GEM_HOME and GEM_PATH for running outside of the build").Line()

	if gemHome != "" {
		s.Line("ENV['GEM_HOME']='", gemHome, "'")
	}

	if len(gemPath) > 0 {
		s.Line("ENV['GEM_PATH']='", strings.Join(gemPath, pathListSeparator), "'")
	}

	return s.Line()
}

func (s *RubyScript) BinPath(gem, executable string) *RubyScript {
	return s.
		Line("require 'rubygems'").
		Line("load Gem.bin_path('", gem, "', '", executable, "')")
}
