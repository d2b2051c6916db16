package rubygoals_test

import (
	"testing"

	"github.com/jruby-gems/rubygoals"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testArgs(t *testing.T, context spec.G, it spec.S) {
	var Expect = NewWithT(t).Expect

	it("splits and concatenates in order", func() {
		args, err := rubygoals.ParseArgs("--path vendor/bundle", "", `--without "test dev"`, "--path other")
		Expect(err).NotTo(HaveOccurred())
		Expect(args).To(Equal([]string{"--path", "vendor/bundle", "--without", "test dev", "--path", "other"}))
	})

	it("returns nothing for empty input", func() {
		args, err := rubygoals.ParseArgs("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(args).To(BeEmpty())
	})

	context("failure cases", func() {
		context("when quotes are unbalanced", func() {
			it("returns an error", func() {
				_, err := rubygoals.ParseArgs(`--without "test`)
				Expect(err).To(MatchError(ContainSubstring("failed to parse arguments")))
			})
		})
	})
}
