package log_test

import (
	// Stdlib
	"bytes"

	// Internal
	"github.com/kwokoek/git-cleaner/log"

	// Vendor
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("levels", func() {
	It("should convert between levels and strings", func() {
		Expect(log.LevelStrings()).To(Equal([]string{"trace", "debug", "verbose", "info", "off"}))

		for _, s := range log.LevelStrings() {
			level, err := log.StringToLevel(s)
			Expect(err).To(BeNil())
			Expect(log.MustLevelToString(level)).To(Equal(s))
		}
	})

	It("should reject unknown levels", func() {
		_, err := log.StringToLevel("loud")
		Expect(err).NotTo(BeNil())

		_, err = log.LevelToString(log.Level(42))
		Expect(err).NotTo(BeNil())
	})
})

var _ = Describe("Logger", func() {
	var buffer *bytes.Buffer

	BeforeEach(func() {
		buffer = new(bytes.Buffer)
		prev := log.SetOutput(buffer)
		DeferCleanup(func() {
			log.SetOutput(prev)
			log.SetV(log.Info)
		})
	})

	It("should print tagged messages", func() {
		log.Run("Delete branch")
		log.Ok("Delete branch")
		log.Warn("Careful")

		Expect(buffer.String()).To(Equal("" +
			"[RUN]      Delete branch\n" +
			"[OK]       Delete branch\n" +
			"[WARN]     Careful\n"))
	})

	It("should respect the verbosity level", func() {
		log.SetV(log.Info)
		log.V(log.Debug).Log("hidden")
		log.V(log.Info).Ok("shown")
		Expect(buffer.String()).To(Equal("[OK]       shown\n"))

		buffer.Reset()
		log.SetV(log.Trace)
		log.V(log.Debug).Log("shown now")
		Expect(buffer.String()).To(Equal("[LOG]      shown now\n"))

		buffer.Reset()
		log.SetV(log.Off)
		log.Fail("hidden")
		Expect(buffer.String()).To(BeEmpty())
	})

	It("should dump stderr when failing with context", func() {
		log.FailWithContext("git push", bytes.NewBufferString("fatal: no such remote"))

		Expect(buffer.String()).To(Equal("" +
			"[FAIL]     git push\n" +
			"<<<<< stderr\n" +
			"fatal: no such remote\n" +
			">>>>> stderr\n"))
	})

	It("should not dump empty stderr", func() {
		log.FailWithContext("git push", new(bytes.Buffer))
		Expect(buffer.String()).To(Equal("[FAIL]     git push\n"))
	})
})
