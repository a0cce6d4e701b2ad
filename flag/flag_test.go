package flag_test

import (
	// Stdlib
	"flag"

	// Internal
	. "github.com/kwokoek/git-cleaner/flag"

	// Vendor
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StringEnumFlag", func() {
	var enum *StringEnumFlag

	BeforeEach(func() {
		enum = NewStringEnumFlag([]string{"info", "debug"}, "info")
	})

	It("should start with the default value", func() {
		Expect(enum.Value()).To(Equal("info"))
		Expect(enum.String()).To(Equal("info"))
	})

	It("should accept the listed values only", func() {
		Expect(enum.Set("debug")).To(Succeed())
		Expect(enum.Value()).To(Equal("debug"))

		Expect(enum.Set("loud")).To(MatchError(ContainSubstring("{info|debug}")))
		Expect(enum.Value()).To(Equal("debug"))
	})

	It("should work with flag.FlagSet", func() {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(enum, "log", "")
		Expect(fs.Parse([]string{"-log=debug", "path"})).To(Succeed())
		Expect(enum.Value()).To(Equal("debug"))
		Expect(fs.Args()).To(Equal([]string{"path"}))
	})
})

var _ = Describe("RegexpSetFlag", func() {
	It("should collect unique patterns", func() {
		set := NewRegexpSetFlag()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(set, "exclude", "")

		Expect(fs.Parse([]string{"-exclude=^main$", "-exclude=^release/", "-exclude=^main$"})).To(Succeed())
		Expect(set.Patterns()).To(Equal([]string{"^main$", "^release/"}))
		Expect(set.String()).To(Equal("^main$,^release/"))
		Expect(set.Values[1].MatchString("release/1.0")).To(BeTrue())
	})

	It("should reject invalid expressions", func() {
		Expect(NewRegexpSetFlag().Set("(")).NotTo(Succeed())
	})
})
