package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/fonts"
	"github.com/automoto/starlane/movement"
	"github.com/automoto/starlane/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects with -hitbox and prints frame and
// orchestrator stats with -debug.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if cfg.Debug.DrawHitbox {
		drawHitboxes(ecs, screen)
	}
	if cfg.Debug.Overlay {
		drawDebugStats(ecs, screen)
	}
}

func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvAlien) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvBonus) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

// DebugLines returns the overlay text, one stat per line.
func DebugLines(ecs *ecs.ECS) []string {
	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("aliens %d  bullets %d  bonuses %d  particles %d",
			countEntries(ecs.World, tags.Alien), countEntries(ecs.World, tags.Bullet),
			countEntries(ecs.World, tags.Bonus), countEntries(ecs.World, components.Particle)),
	}

	entry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return lines
	}
	campaign := components.Campaign.Get(entry)
	if o := campaign.Orchestrator; o != nil {
		lines = append(lines, fmt.Sprintf("level %d  state %s  active %d  queued %d",
			o.Level(), o.State(), o.ActiveGroups(), o.Remaining()))
		if err := o.Err(); err != nil {
			lines = append(lines, fmt.Sprintf("error: %v", err))
		}
	}
	tracked := 0
	for _, engine := range []*movement.Engine{campaign.Engine, campaign.GroupEngine} {
		if engine != nil {
			tracked += engine.Tracked()
		}
	}
	lines = append(lines, fmt.Sprintf("elapsed %.1fs  wandering %d", campaign.Elapsed, tracked))
	return lines
}

type eacher interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

func countEntries(w donburi.World, c eacher) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func drawDebugStats(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUDSmall.Get()
	y := cfg.HUD.BarHeight + 3*cfg.HUD.LineHeight
	for _, line := range DebugLines(ecs) {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), int(y), cfg.Magenta)
		y += cfg.HUD.LineHeight * 0.8
	}
}
