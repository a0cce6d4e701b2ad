package app_test

import (
	// Stdlib
	"os"

	// Internal
	. "github.com/kwokoek/git-cleaner/app"
	"github.com/kwokoek/git-cleaner/app/appflags"
	"github.com/kwokoek/git-cleaner/log"

	// Vendor
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Init", func() {
	var (
		repoDir  string
		homeDir  string
		prevHome string
	)

	BeforeEach(func() {
		var err error
		repoDir, err = os.MkdirTemp("", "git-cleaner-app")
		Expect(err).To(BeNil())

		homeDir, err = os.MkdirTemp("", "git-cleaner-home")
		Expect(err).To(BeNil())

		prevHome = os.Getenv("HOME")
		Expect(os.Setenv("HOME", homeDir)).To(Succeed())

		appflags.FlagConfig = ""
		appflags.FlagSkipMalformed = false
		appflags.FlagExclude.Values = nil
	})

	AfterEach(func() {
		appflags.FlagSkipMalformed = false
		appflags.FlagExclude.Values = nil
		Expect(appflags.FlagLog.Set("info")).To(Succeed())
		log.SetV(log.Info)

		Expect(os.Setenv("HOME", prevHome)).To(Succeed())
		os.RemoveAll(repoDir)
		os.RemoveAll(homeDir)
	})

	It("should apply the flags on top of the configuration files", func() {
		Expect(os.WriteFile(
			repoDir+"/.git-cleaner.yml", []byte("exclude: [\"^master$\"]\n"), 0644)).To(Succeed())
		Expect(appflags.FlagExclude.Set("^release/")).To(Succeed())
		appflags.FlagSkipMalformed = true

		cfg, err := Init(repoDir)
		Expect(err).To(BeNil())
		Expect(cfg.Exclude).To(Equal([]string{"^master$", "^release/"}))
		Expect(cfg.SkipMalformedRecords()).To(BeTrue())
	})

	It("should leave skip_malformed from the files alone when the flag is not set", func() {
		Expect(os.WriteFile(
			repoDir+"/.git-cleaner.yml", []byte("skip_malformed: true\n"), 0644)).To(Succeed())

		cfg, err := Init(repoDir)
		Expect(err).To(BeNil())
		Expect(cfg.SkipMalformedRecords()).To(BeTrue())
	})

	It("should set the log level", func() {
		Expect(appflags.FlagLog.Set("off")).To(Succeed())

		_, err := Init(repoDir)
		Expect(err).To(BeNil())
		Expect(bool(log.V(log.Info))).To(BeFalse())
	})
})
