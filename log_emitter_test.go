package rubygoals_test

import (
	"bytes"
	"testing"

	"github.com/jruby-gems/rubygoals"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testLogEmitter(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		buffer  *bytes.Buffer
		emitter rubygoals.LogEmitter
	)

	it.Before(func() {
		buffer = bytes.NewBuffer(nil)
		emitter = rubygoals.NewLogEmitter(buffer)
	})

	context("Invocation", func() {
		it("prints the command line", func() {
			emitter.Invocation("bundle", []string{"install", "--local"})
			Expect(buffer.String()).To(ContainSubstring("    Running 'bundle install --local'"))
		})

		it("handles commands without arguments", func() {
			emitter.Invocation("gem", nil)
			Expect(buffer.String()).To(ContainSubstring("Running 'gem'"))
		})
	})

	context("Warning", func() {
		it("prints a warning", func() {
			emitter.Warning("can not set executable flag: %s", "/bin/rake")
			Expect(buffer.String()).To(ContainSubstring("    WARNING: can not set executable flag: /bin/rake"))
		})
	})

	context("GemEnvironment", func() {
		it("prints details about the gem environment", func() {
			emitter.GemEnvironment("/gems", []string{"/gems", "/more"})

			Expect(buffer.String()).To(ContainSubstring("  Configuring gem environment"))
			Expect(buffer.String()).To(ContainSubstring(`    GEM_HOME -> "/gems"`))
			Expect(buffer.String()).To(ContainSubstring(`    GEM_PATH -> "/gems:/more"`))
		})

		it("prints nothing when there is no gem environment", func() {
			emitter.GemEnvironment("", nil)
			Expect(buffer.String()).To(BeEmpty())
		})
	})

	context("WithVerbosity", func() {
		it("prints debug output when verbose", func() {
			emitter.WithVerbosity(true).Debug.Subprocess("debug line")
			Expect(buffer.String()).To(ContainSubstring("debug line"))
		})

		it("hides debug output otherwise", func() {
			emitter.WithVerbosity(false).Debug.Subprocess("debug line")
			Expect(buffer.String()).To(BeEmpty())
		})
	})
}
