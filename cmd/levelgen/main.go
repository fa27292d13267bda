package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/automoto/starlane/leveldata"
)

func main() {
	out := flag.String("out", "levels", "Directory the level files are written to")
	from := flag.Int("from", 1, "First level to generate")
	to := flag.Int("to", leveldata.CampaignLength, "Last level to generate")
	seed := flag.Int64("seed", 1, "Generator seed; the same seed always yields the same campaign")
	check := flag.Bool("check", false, "Validate the level files in -out instead of writing")
	flag.Parse()

	if *check {
		if err := validate(*out); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	if *from < 1 || *to < *from {
		log.Fatalf("Error: bad level range %d-%d", *from, *to)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Error: create %s: %v", *out, err)
	}

	gen := leveldata.NewGenerator(rand.New(rand.NewSource(*seed)))
	for n := *from; n <= *to; n++ {
		desc, err := gen.Generate(n)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if err := write(filepath.Join(*out, leveldata.FileName(n)), desc); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}
	log.Printf("Wrote levels %d-%d to %s", *from, *to, *out)
}

func write(path string, desc *leveldata.LevelDescriptor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := leveldata.Encode(f, desc); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// validate loads every level in dir and reports the first one that fails.
func validate(dir string) error {
	repo := leveldata.NewRepository(os.DirFS(dir), ".")
	levels, err := repo.Available()
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		return fmt.Errorf("no level files in %s", dir)
	}

	groups := 0
	for _, n := range levels {
		desc, err := repo.Load(n)
		if err != nil {
			return err
		}
		groups += desc.Groups.Len()
	}
	log.Printf("%d levels OK, %d groups", len(levels), groups)
	return nil
}
