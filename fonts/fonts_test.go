package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAllSharesParsedFont(t *testing.T) {
	require.NoError(t, LoadAll(
		Spec{Name: HUD, TTF: goregular.TTF, Size: 16},
		Spec{Name: HUDSmall, TTF: goregular.TTF, Size: 12},
	))
	assert.Len(t, parsed, 1)
	assert.NotNil(t, HUD.Get())
	assert.NotSame(t, HUD.Get(), HUDSmall.Get())
}

func TestLoadRejectsBadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize(Title, nil, 10))
	assert.Error(t, LoadFontWithSize(Title, []byte("not a font"), 10))
	assert.Panics(t, func() { FontName("missing").Get() })
}
