package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"InfoPrefix", "ErrorPrefix", "Error", "Warning", "Muted", "Path", "Header"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}

	assert.True(t, GetStyle("InfoPrefix").GetBold())
	assert.True(t, GetStyle("Path").GetItalic())
	assert.True(t, GetStyle("Header").GetUnderline())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData_Custom(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	require.NoError(t, LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Accent: {foreground: accent, underline: true}
`)))
	assert.True(t, GetStyle("Accent").GetUnderline())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	assert.Error(t, LoadStylesFromData([]byte("styles: [not, a, map")))
}

func TestInitDefaultStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	initDefaultStyles()
	_, ok := StyleRegistry["Header"]
	assert.True(t, ok)
	assert.Equal(t, "text", GetStyle("Header").Render("text"))
}
