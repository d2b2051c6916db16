package rubygoals_test

import (
	"testing"

	"github.com/jruby-gems/rubygoals"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testRubyScript(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		script *rubygoals.RubyScript
	)

	it.Before(func() {
		script = &rubygoals.RubyScript{}
	})

	context("Classpath", func() {
		it("registers each element as a file url", func() {
			script.Classpath([]string{"/m2/foo.jar", "/project/target/classes", "jruby-complete-"})

			Expect(script.String()).To(Equal(`if defined? JRUBY_VERSION
  # Set up the classpath for running outside of the build

  def add_classpath_element(element)
    JRuby.runtime.jruby_class_loader.addURL( Java::java.net::URL.new( element ) )
  end

  add_classpath_element(%Q( file:///m2/foo.jar ))
  add_classpath_element(%Q( file:///project/target/classes/ ))
end

`))
		})
	})

	context("GemEnvironment", func() {
		it("exports GEM_HOME and GEM_PATH", func() {
			script.GemEnvironment("/gems/home", []string{"/gems/a", "/gems/b"})

			Expect(script.String()).To(Equal(`# Set up GEM_HOME and GEM_PATH for running outside of the build

ENV['GEM_HOME']='/gems/home'
ENV['GEM_PATH']='/gems/a:/gems/b'

`))
		})

		it("does not escape interpolated values", func() {
			script.GemEnvironment("/it's/home", nil)
			Expect(script.String()).To(ContainSubstring("ENV['GEM_HOME']='/it's/home'\n"))
			Expect(script.String()).NotTo(ContainSubstring("ENV['GEM_PATH']"))
		})

		it("writes nothing when neither is set", func() {
			script.GemEnvironment("", nil)
			Expect(script.String()).To(BeEmpty())
		})
	})

	context("BinPath", func() {
		it("loads the executable through rubygems", func() {
			script.BinPath("bundler", "bundle")
			Expect(script.String()).To(Equal("require 'rubygems'\nload Gem.bin_path('bundler', 'bundle')\n"))
		})
	})

	context("LoadSetup", func() {
		it("loads the setup script next to the real launcher path", func() {
			script.SheBang("jruby").LoadSetup()
			Expect(script.String()).To(Equal(`#!/usr/bin/env jruby
require 'pathname'
load(File.expand_path('../setup', Pathname.new(__FILE__).realpath))
`))
		})
	})
}
