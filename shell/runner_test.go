package shell_test

import (
	// Stdlib
	"errors"
	"os"
	"path/filepath"

	// Internal
	. "github.com/kwokoek/git-cleaner/shell"

	// Vendor
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Command", func() {
	It("should render as a space-separated command line", func() {
		cmd := NewCommand("git", "push", "--porcelain", "origin", ":feature")
		Expect(cmd.String()).To(Equal("git push --porcelain origin :feature"))
	})
})

var _ = Describe("Run", func() {
	It("should capture stdout and stderr", func() {
		stdout, stderr, err := Run("", "sh", "-c", "echo out; echo err >&2")
		Expect(err).To(BeNil())
		Expect(stdout.String()).To(Equal("out\n"))
		Expect(stderr.String()).To(Equal("err\n"))
	})

	It("should run the command with the given environment", func() {
		stdout, _, err := RunWithEnv("", []string{"GREETING=hello"}, "sh", "-c", "echo $GREETING")
		Expect(err).To(BeNil())
		Expect(stdout.String()).To(Equal("hello\n"))
	})

	It("should fail when no command is given", func() {
		_, _, err := Run("")
		Expect(err).NotTo(BeNil())
	})
})

var _ = Describe("Runner", func() {
	var (
		dir    string
		runner *Runner
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "git-cleaner-shell")
		Expect(err).To(BeNil())
		DeferCleanup(os.RemoveAll, dir)

		runner = NewRunner()
	})

	It("should return the command line on success", func() {
		cmd := NewCommand("sh", "-c", "exit 0")
		line, err := runner.Run(dir, cmd, false)
		Expect(err).To(BeNil())
		Expect(line).To(Equal("sh -c exit 0"))
	})

	It("should run the command in the given directory", func() {
		Expect(os.WriteFile(filepath.Join(dir, "marker"), nil, 0644)).To(Succeed())

		_, err := runner.Run(dir, NewCommand("test", "-f", "marker"), false)
		Expect(err).To(BeNil())
	})

	It("should fail on non-zero exit status", func() {
		cmd := NewCommand("sh", "-c", "exit 3")
		line, err := runner.Run(dir, cmd, false)
		Expect(line).To(BeEmpty())

		var cmdErr *CommandFailedError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Command).To(Equal("sh -c exit 3"))
		Expect(cmdErr.Err).NotTo(BeNil())
	})

	It("should fail on stderr output even when the exit status is zero", func() {
		cmd := NewCommand("sh", "-c", "echo oops >&2")
		_, err := runner.Run(dir, cmd, false)

		var cmdErr *CommandFailedError
		Expect(errors.As(err, &cmdErr)).To(BeTrue())
		Expect(cmdErr.Err).To(BeNil())
		Expect(cmdErr.Stderr.String()).To(Equal("oops\n"))
	})

	It("should accept stderr output unless StrictStderr is set", func() {
		runner.StrictStderr = false

		_, err := runner.Run(dir, NewCommand("sh", "-c", "echo progress >&2"), false)
		Expect(err).To(BeNil())

		_, err = runner.Run(dir, NewCommand("sh", "-c", "exit 1"), false)
		Expect(err).NotTo(BeNil())
	})

	It("should swallow failures when asked to ignore errors", func() {
		cmd := NewCommand("sh", "-c", "echo 'no such branch' >&2; exit 1")
		line, err := runner.Run(dir, cmd, true)
		Expect(err).To(BeNil())
		Expect(line).To(Equal(cmd.String()))
	})

	It("should fail when the program does not exist", func() {
		_, err := runner.Run(dir, NewCommand("git-cleaner-no-such-program"), false)
		Expect(err).NotTo(BeNil())
	})
})
