package output_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/pkghelper/pkg/ui"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/stretchr/testify/assert"
)

func TestConsole_PlainText(t *testing.T) {
	var buf bytes.Buffer
	console := output.NewConsole(&buf, ui.FormatText)

	console.Info("install: a -> b")
	console.Error("10-hook: exited with 3")

	assert.Equal(t, " => install: a -> b\n => 10-hook: exited with 3\n", buf.String())
}

func TestConsole_StyledKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	console := output.NewConsole(&buf, ui.FormatTerminal)

	console.Info("install_hook: 10-hook")

	assert.Contains(t, buf.String(), "=>")
	assert.Contains(t, buf.String(), "install_hook: 10-hook\n")
}

func TestRecorder(t *testing.T) {
	rec := output.NewRecorder()
	var p output.Printer = rec

	p.Info("first")
	p.Error("second")
	p.Info("third")

	assert.Equal(t, []output.Line{
		{Level: output.LevelInfo, Message: "first"},
		{Level: output.LevelError, Message: "second"},
		{Level: output.LevelInfo, Message: "third"},
	}, rec.Lines())
	assert.Equal(t, []string{"first", "third"}, rec.Messages(output.LevelInfo))
	assert.Equal(t, []string{"second"}, rec.Messages(output.LevelError))
}

func TestDiscard(t *testing.T) {
	var p output.Printer = output.Discard{}
	p.Info("ignored")
	p.Error("ignored")
}
