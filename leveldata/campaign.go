package leveldata

import (
	"errors"
	"math/rand"
)

// Campaign serves level files first and generates the levels the files
// leave out, up to Length. A zero Length serves files only.
type Campaign struct {
	Files  *Repository
	Length int
	Seed   int64
}

// Load returns level n from the files, or generates it when there is no file
// for it and n is inside the campaign. Generated levels depend only on Seed
// and n.
func (c *Campaign) Load(level int) (*LevelDescriptor, error) {
	desc, err := c.Files.Load(level)
	if err == nil || !errors.Is(err, ErrNotFound) || level < 1 || level > c.Length {
		return desc, err
	}

	gen := NewGenerator(rand.New(rand.NewSource(c.Seed + int64(level))))
	desc, err = gen.Generate(level)
	if err != nil {
		return nil, &LoadError{Level: level, Err: errors.Join(ErrNotFound, err)}
	}
	return desc, nil
}
