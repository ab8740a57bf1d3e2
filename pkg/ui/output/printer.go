package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/pkghelper/pkg/ui"
	"github.com/arthur-debert/pkghelper/pkg/ui/output/styles"
)

// Prefix introduces every status line
const Prefix = " => "

// Printer receives status lines
type Printer interface {
	Info(msg string)
	Error(msg string)
}

// Console writes status lines to a writer, styled for terminals
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

// NewConsole creates a console printer. FormatAuto is treated as plain
// text; callers that own a terminal should resolve the format first.
func NewConsole(out io.Writer, format ui.Format) *Console {
	return &Console{out: out, styled: format == ui.FormatTerminal}
}

// Info prints an informational status line
func (c *Console) Info(msg string) {
	c.print("InfoPrefix", msg)
}

// Error prints an error status line
func (c *Console) Error(msg string) {
	c.print("ErrorPrefix", msg)
}

func (c *Console) print(prefixStyle, msg string) {
	prefix := Prefix
	if c.styled {
		prefix = styles.GetStyle(prefixStyle).Render(prefix)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.out, "%s%s\n", prefix, msg)
}

// Level identifies the kind of a recorded line
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Line is a single recorded status line
type Line struct {
	Level   Level
	Message string
}

// Recorder keeps status lines in memory
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(msg string) {
	r.record(LevelInfo, msg)
}

func (r *Recorder) Error(msg string) {
	r.record(LevelError, msg)
}

func (r *Recorder) record(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Level: level, Message: msg})
}

// Lines returns every recorded line in order
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

// Messages returns the messages recorded at level
func (r *Recorder) Messages(level Level) []string {
	var msgs []string
	for _, line := range r.Lines() {
		if line.Level == level {
			msgs = append(msgs, line.Message)
		}
	}
	return msgs
}

// Discard drops every status line
type Discard struct{}

func (Discard) Info(string)  {}
func (Discard) Error(string) {}
