package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	a, err := LoadArena(os.DirFS("../assets"), "arena/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 800.0, a.Width)
	assert.Equal(t, 600.0, a.Height)
	require.NotNil(t, a.PlayLeft)
	require.NotNil(t, a.PlayRight)
	assert.InDelta(t, 0.115, *a.PlayLeft, 1e-9)
	assert.InDelta(t, 0.885, *a.PlayRight, 1e-9)

	require.Len(t, a.Anchors, 5)
	top := a.Anchors[EntryTopCenter]
	assert.InDelta(t, 0.5, top.XFrac, 1e-9)
	assert.Equal(t, -50.0, top.YOffset)
	assert.Zero(t, top.YFrac)

	side := a.Anchors[EntryLeftTop]
	assert.InDelta(t, 0.1, side.XFrac, 1e-9)
	assert.InDelta(t, 0.2, side.YFrac, 1e-9)
	assert.InDelta(t, 0.2, side.Compression, 1e-9)
}

func TestLoadArenaRejectsUnknownEntry(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="8" tileheight="8" infinite="0">
 <objectgroup id="1" name="EntryPoints">
  <object id="1" name="bottom_middle" x="40" y="40"><point/></object>
 </objectgroup>
</map>`)}}

	_, err := LoadArena(fsys, "bad.tmx")
	assert.Error(t, err)
}
