package log

import (
	// Stdlib
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelStrings = []string{"trace", "debug", "verbose", "info", "off"}

// LevelStrings returns the textual representation of all the levels,
// ordered from the most verbose one.
func LevelStrings() []string {
	ss := make([]string, len(levelStrings))
	copy(ss, levelStrings)
	return ss
}

func StringToLevel(s string) (Level, error) {
	for i, str := range levelStrings {
		if str == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("invalid log level: %v", s)
}

func MustStringToLevel(s string) Level {
	level, err := StringToLevel(s)
	if err != nil {
		panic(err)
	}
	return level
}

func LevelToString(level Level) (string, error) {
	if int(level) >= len(levelStrings) {
		return "", fmt.Errorf("invalid log level: %d", level)
	}
	return levelStrings[level], nil
}

func MustLevelToString(level Level) string {
	s, err := LevelToString(level)
	if err != nil {
		panic(err)
	}
	return s
}

var (
	v Level = Info

	mu  sync.Mutex
	out io.Writer = ansicolor.NewAnsiColorWriter(os.Stderr)
)

func SetV(level Level) {
	atomic.StoreUint32((*uint32)(&v), uint32(level))
}

// SetOutput redirects the log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func V(level Level) Logger {
	if atomic.LoadUint32((*uint32)(&v)) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

// Tags ------------------------------------------------------------------------

var (
	runColor  = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
	warnColor = color.New(color.FgYellow, color.Bold)
	failColor = color.New(color.FgRed)
)

// Lock can be used to print multiple lines without being interrupted.
// The Unsafe* methods must be used while the lock is being held.
func (l Logger) Lock() {
	mu.Lock()
}

func (l Logger) Unlock() {
	mu.Unlock()
}

func (l Logger) UnsafeRun(msg string) {
	l.unsafeTag(runColor, "[RUN]", msg)
}

func (l Logger) UnsafeOk(msg string) {
	l.unsafeTag(okColor, "[OK]", msg)
}

func (l Logger) UnsafeSkip(msg string) {
	l.unsafeTag(skipColor, "[SKIP]", msg)
}

func (l Logger) UnsafeWarn(msg string) {
	l.unsafeTag(warnColor, "[WARN]", msg)
}

func (l Logger) UnsafeFail(msg string) {
	l.unsafeTag(failColor, "[FAIL]", msg)
}

func (l Logger) UnsafeLog(msg string) {
	l.unsafeTag(nil, "[LOG]", msg)
}

// UnsafeNewLine prints a line indented so that it is aligned with the tagged messages.
func (l Logger) UnsafeNewLine(msg string) {
	l.unsafeTag(nil, "", msg)
}

func (l Logger) UnsafeStderr(stderr *bytes.Buffer) {
	if stderr == nil || stderr.Len() == 0 {
		return
	}
	l.UnsafePrintln("<<<<< stderr")
	l.UnsafePrint(stderr)
	if !bytes.HasSuffix(stderr.Bytes(), []byte{'\n'}) {
		l.UnsafePrintln()
	}
	l.UnsafePrintln(">>>>> stderr")
}

func (l Logger) UnsafePrint(v ...interface{}) {
	if l {
		fmt.Fprint(out, v...)
	}
}

func (l Logger) UnsafePrintf(format string, v ...interface{}) {
	if l {
		fmt.Fprintf(out, format, v...)
	}
}

func (l Logger) UnsafePrintln(v ...interface{}) {
	if l {
		fmt.Fprintln(out, v...)
	}
}

// unsafeTag pads the tag so that the messages are aligned.
// The colour is applied after padding, escape sequences have no width.
func (l Logger) unsafeTag(c *color.Color, tag, msg string) {
	tag = fmt.Sprintf("%-10s", tag)
	if c != nil {
		tag = c.Sprint(tag)
	}
	l.UnsafePrintf("%v %v\n", tag, msg)
}

func (l Logger) Run(msg string) {
	l.locked(func() { l.UnsafeRun(msg) })
}

func (l Logger) Ok(msg string) {
	l.locked(func() { l.UnsafeOk(msg) })
}

func (l Logger) Skip(msg string) {
	l.locked(func() { l.UnsafeSkip(msg) })
}

func (l Logger) Warn(msg string) {
	l.locked(func() { l.UnsafeWarn(msg) })
}

func (l Logger) Fail(msg string) {
	l.locked(func() { l.UnsafeFail(msg) })
}

func (l Logger) Log(msg string) {
	l.locked(func() { l.UnsafeLog(msg) })
}

func (l Logger) NewLine(msg string) {
	l.locked(func() { l.UnsafeNewLine(msg) })
}

func (l Logger) FailWithContext(msg string, stderr *bytes.Buffer) {
	l.locked(func() {
		if msg != "" {
			l.UnsafeFail(msg)
		}
		l.UnsafeStderr(stderr)
	})
}

func (l Logger) Print(v ...interface{}) {
	l.locked(func() { l.UnsafePrint(v...) })
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.locked(func() { l.UnsafePrintf(format, v...) })
}

func (l Logger) Println(v ...interface{}) {
	l.locked(func() { l.UnsafePrintln(v...) })
}

func (l Logger) locked(f func()) {
	if !l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	f()
}

// Package-level shortcuts, all logging at Info level.

func Run(msg string) {
	V(Info).Run(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Skip(msg string) {
	V(Info).Skip(msg)
}

func Warn(msg string) {
	V(Info).Warn(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func NewLine(msg string) {
	V(Info).NewLine(msg)
}

func FailWithContext(msg string, stderr *bytes.Buffer) {
	V(Info).FailWithContext(msg, stderr)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}
