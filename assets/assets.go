package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/starlane/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:arena
	arenaFS embed.FS
)

// LevelsDir is the directory of the embedded level files.
const LevelsDir = "levels"

// CampaignSeed seeds the levels generated past the embedded files.
const CampaignSeed = 1

// Levels returns the level source. An empty dir reads the embedded levels
// and generates the rest of the campaign; anything else reads only the
// NNN.json files in that directory on disk.
func Levels(dir string) *leveldata.Campaign {
	if dir == "" {
		return &leveldata.Campaign{
			Files:  leveldata.NewRepository(levelFS, LevelsDir),
			Length: leveldata.CampaignLength,
			Seed:   CampaignSeed,
		}
	}
	return &leveldata.Campaign{Files: leveldata.NewRepository(os.DirFS(dir), ".")}
}

// EmbeddedLevels exposes the embedded level files for tools and tests.
func EmbeddedLevels() fs.FS {
	sub, err := fs.Sub(levelFS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded levels: %v", err))
	}
	return sub
}

// Arena loads the arena map at tmxPath, relative to the assets directory,
// e.g. "arena/arena.tmx".
func Arena(tmxPath string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(arenaFS, path.Clean(tmxPath))
}
