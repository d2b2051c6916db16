package rubygoals_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jruby-gems/rubygoals"
	"github.com/jruby-gems/rubygoals/fakes"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testExec(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		buffer *bytes.Buffer
		gem    *fakes.Executable
		config rubygoals.Config

		exec rubygoals.ExecFunc
	)

	it.Before(func() {
		buffer = bytes.NewBuffer(nil)
		gem = &fakes.Executable{}

		config = rubygoals.Config{
			ProjectRoot: "/project",
			Args:        "--verbose",
		}
		config.Gem.Args = "list --local"

		exec = rubygoals.Exec(gem, rubygoals.NewLogEmitter(buffer))
	})

	it("runs gem with the gem arguments before the generic ones", func() {
		Expect(exec(rubygoals.ExecContext{Config: config})).To(Succeed())

		Expect(gem.ExecuteCall.Receives.Execution.Args).To(Equal([]string{"list", "--local", "--verbose"}))
		Expect(gem.ExecuteCall.Receives.Execution.Dir).To(Equal("/project"))
		Expect(buffer.String()).To(ContainSubstring("WARNING: DEPRECATED"))
		Expect(buffer.String()).To(ContainSubstring("Running 'gem list --local --verbose'"))
	})

	context("failure cases", func() {
		context("when gem fails", func() {
			it.Before(func() {
				gem.ExecuteCall.Returns.Error = errors.New("exit status 1")
			})

			it("returns an error", func() {
				err := exec(rubygoals.ExecContext{Config: config})
				Expect(err).To(MatchError("failed to execute gem: exit status 1"))
			})
		})

		context("when the arguments cannot be parsed", func() {
			it.Before(func() {
				config.Gem.Args = "'open"
			})

			it("returns an error", func() {
				err := exec(rubygoals.ExecContext{Config: config})
				Expect(err).To(MatchError(ContainSubstring("failed to parse arguments")))
				Expect(gem.ExecuteCall.CallCount).To(Equal(0))
			})
		})
	})
}
