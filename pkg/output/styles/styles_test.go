package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Error", "Warning", "Success", "Name", "FilePath", "Muted", "Directory"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be defined", name)
	}

	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("Directory").GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(embeddedStyles) })

	err := LoadStylesFromData([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("DoesNotExist")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestInitDefaultStyles(t *testing.T) {
	t.Cleanup(func() { _ = LoadStylesFromData(embeddedStyles) })

	initDefaultStyles()
	assert.Len(t, StyleRegistry, 7)
	assert.False(t, GetStyle("Error").GetBold())
}
