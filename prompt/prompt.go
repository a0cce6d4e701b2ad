package prompt

import (
	// Stdlib
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	// Internal
	"github.com/kwokoek/git-cleaner/log"

	// Vendor
	"github.com/mattn/go-isatty"
	"github.com/shiena/ansicolor"
)

// ErrCanceled is returned when the input is closed while waiting for an answer.
var ErrCanceled = errors.New("operation canceled")

// Console reads answers line by line and prints questions.
//
// A single buffered reader is kept for the whole session,
// so no input typed ahead is lost between the questions.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{bufio.NewReader(in), out}
}

var (
	stdio     *Console
	stdioOnce sync.Once
)

// Stdio returns the console connected to the standard input and output.
func Stdio() *Console {
	stdioOnce.Do(func() {
		fd := os.Stdin.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			log.Warn("Standard input is not a terminal, reading the answers from it anyway")
		}
		stdio = NewConsole(os.Stdin, ansicolor.NewAnsiColorWriter(os.Stdout))
	})
	return stdio
}

// Writer returns the writer questions are printed into.
func (console *Console) Writer() io.Writer {
	return console.out
}

// Prompt prints msg and returns the line entered, without the line ending.
// The answer is returned as typed, no case folding or trimming happens.
func (console *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(console.out, msg)

	line, err := console.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(console.out)
			return "", ErrCanceled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
