// Command formation-preview draws where each group of a level spawns, in
// the terminal. Left/Right switch groups, c copies the current group's
// spawn points, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/automoto/starlane/assets"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/formation"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/gdamore/tcell/v2"
)

// Rows above the screen kept visible, where top entries form up.
const marginAbove = 160.0

type preview struct {
	screen tcell.Screen
	level  *leveldata.LevelDescriptor
	groups []leveldata.GroupDescriptor
	layout formation.Layout
	view   gamemath.Viewport
	index  int
	note   string
}

func main() {
	levelNum := flag.Int("level", 1, "Level to preview")
	levelsDir := flag.String("levels", "", "Directory of NNN.json files (default: built-in campaign)")
	flag.Parse()

	desc, err := assets.Levels(*levelsDir).Load(*levelNum)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	layout := formation.DefaultLayout()
	if arena, err := assets.Arena(cfg.Wave.ArenaPath); err == nil {
		layout = formation.LayoutFromArena(arena)
	} else {
		log.Printf("Warning: %v, using default layout", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))

	p := &preview{
		screen: screen,
		level:  desc,
		groups: desc.Groups.Items(),
		layout: layout,
		view:   gamemath.Viewport{W: float64(cfg.C.Width), H: float64(cfg.C.Height)},
	}
	p.run()
}

func (p *preview) run() {
	for {
		p.draw()
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			p.note = ""
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'n':
				if len(p.groups) > 0 {
					p.index = (p.index + 1) % len(p.groups)
				}
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'p':
				if len(p.groups) > 0 {
					p.index = (p.index - 1 + len(p.groups)) % len(p.groups)
				}
			case ev.Rune() == 'c':
				p.copyPoints()
			}
		}
	}
}

func (p *preview) draw() {
	p.screen.Clear()
	cols, rows := p.screen.Size()
	rows -= 3 // Status lines

	toCell := func(x, y float64) (int, int) {
		cx := int(x / p.view.W * float64(cols-1))
		cy := int((y + marginAbove) / (p.view.H + marginAbove) * float64(rows-1))
		return cx, cy
	}

	// Screen top edge and play area band
	dim := tcell.StyleDefault.Foreground(tcell.Color(240))
	_, top := toCell(0, 0)
	for x := 0; x < cols; x++ {
		p.screen.SetContent(x, top, '-', nil, dim)
	}
	left, right := cfg.PlayArea.Bounds(p.view.W)
	lx, _ := toCell(left, 0)
	rx, _ := toCell(right, 0)
	for y := 0; y < rows; y++ {
		p.screen.SetContent(lx, y, '|', nil, dim)
		p.screen.SetContent(rx, y, '|', nil, dim)
	}

	status := fmt.Sprintf("Level %d %q: no groups", p.level.Number, p.level.Name)
	if len(p.groups) > 0 {
		g := p.groups[p.index]
		w, _ := alienSize(g.AlienType)
		pts, err := formation.Spawn(g, p.view, cfg.PlayArea, p.layout, w)
		if err != nil {
			status = fmt.Sprintf("group %d: %v", p.index+1, err)
		} else {
			style := tcell.StyleDefault.Foreground(groupColor(g))
			for _, pt := range pts {
				x, y := toCell(pt.X, pt.Y)
				p.screen.SetContent(x, y, glyph(g.AlienType), nil, style)
			}
			status = fmt.Sprintf("Level %d %q  group %d/%d: %d x %s  %s from %s, %s",
				p.level.Number, p.level.Name, p.index+1, len(p.groups),
				g.Count, g.AlienType, g.Formation, g.EntryPoint, g.Movement)
		}
	}
	p.text(0, rows+1, status)
	help := "Left/Right: group   c: copy points   q: quit"
	if p.note != "" {
		help = p.note
	}
	p.text(0, rows+2, help)
	p.screen.Show()
}

// copyPoints puts the spawn points of the current group on the clipboard,
// one "x,y" pair per line.
func (p *preview) copyPoints() {
	if len(p.groups) == 0 {
		return
	}
	g := p.groups[p.index]
	w, _ := alienSize(g.AlienType)
	pts, err := formation.Spawn(g, p.view, cfg.PlayArea, p.layout, w)
	if err != nil {
		p.note = err.Error()
		return
	}
	var b strings.Builder
	for _, pt := range pts {
		fmt.Fprintf(&b, "%.1f,%.1f\n", pt.X, pt.Y)
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		p.note = fmt.Sprintf("copy failed: %v", err)
		return
	}
	p.note = fmt.Sprintf("copied %d points", len(pts))
}

func (p *preview) text(x, y int, s string) {
	for i, r := range s {
		p.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func alienSize(t leveldata.AlienType) (float64, float64) {
	switch t.Category {
	case leveldata.CategoryLarge:
		return cfg.Aliens.Large.Width, cfg.Aliens.Large.Height
	case leveldata.CategoryBoss:
		return cfg.Aliens.Boss.Width, cfg.Aliens.Boss.Height
	}
	return cfg.Aliens.Small.Width, cfg.Aliens.Small.Height
}

func glyph(t leveldata.AlienType) rune {
	switch t.Category {
	case leveldata.CategoryLarge:
		return 'W'
	case leveldata.CategoryBoss:
		return 'B'
	}
	return 'v'
}

func groupColor(g leveldata.GroupDescriptor) tcell.Color {
	if g.GroupBehavior {
		return tcell.ColorYellow
	}
	return tcell.ColorGreen
}
