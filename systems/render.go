package systems

import (
	"image/color"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var bonusColors = map[components.BonusKind]color.RGBA{
	components.BonusExtraLife:  cfg.LightRed,
	components.BonusScore:      cfg.Yellow,
	components.BonusDoubleShot: cfg.LightBlue,
	components.BonusSpeed:      cfg.BrightGreen,
	components.BonusMultiplier: cfg.Purple,
}

// DrawBackground fills the screen, shades the margins outside the play area
// and draws the star field.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)
	left, right := cfg.PlayArea.Bounds(float64(cfg.C.Width))

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		vector.FillRect(screen, float32(star.X), float32(star.Y), float32(star.Size), float32(star.Size), cfg.HUD.StarColor, false)
	})

	vector.FillRect(screen, 0, 0, float32(left), h, cfg.HUD.BandColor, false)
	vector.FillRect(screen, float32(right), 0, w-float32(right), h, cfg.HUD.BandColor, false)
}

// DrawAliens renders aliens as coloured blocks. A hit flashes white and a
// dying alien shrinks into its centre.
func DrawAliens(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Alien.Each(ecs.World, func(e *donburi.Entry) {
		alien := components.Alien.Get(e)
		o := components.Object.Get(e)
		if o.Y+o.H < 0 {
			return
		}

		clr := factory.AlienStyle(alien.Type).Color
		if components.Flash.Get(e).Frames > 0 {
			clr = cfg.White
		}

		x, y, w, h := o.X, o.Y, o.W, o.H
		if e.HasComponent(components.Death) {
			ratio := float64(components.Death.Get(e).Timer) / float64(max(cfg.Aliens.DeathFrames, 1))
			cx, cy := o.Centre()
			w, h = o.W*ratio, o.H*ratio
			x, y = cx-w/2, cy-h/2
			clr = cfg.Orange
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)

		// Eyes, so a block reads as a ship
		if !e.HasComponent(components.Death) {
			eye := float32(o.W / 6)
			vector.FillRect(screen, float32(o.X+o.W*0.25), float32(o.Y+o.H*0.3), eye, eye, color.Black, false)
			vector.FillRect(screen, float32(o.X+o.W*0.75)-eye, float32(o.Y+o.H*0.3), eye, eye, color.Black, false)
		}
	})
}

// DrawPlayer renders the ship as a triangle, blinking while invulnerable.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.InvulnFrames > 0 && (player.InvulnFrames/6)%2 == 0 {
		return
	}
	o := components.Object.Get(playerEntry)

	var path vector.Path
	path.MoveTo(float32(o.X+o.W/2), float32(o.Y))
	path.LineTo(float32(o.X+o.W), float32(o.Y+o.H))
	path.LineTo(float32(o.X), float32(o.Y+o.H))
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(cfg.Player.Color)
	vector.FillPath(screen, &path, nil, op)
}

// DrawBullets renders every projectile.
func DrawBullets(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		o := components.Object.Get(e)
		clr := cfg.Bullet.AlienColor
		if bullet.Owner == components.OwnerPlayer {
			clr = cfg.Bullet.PlayerColor
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
	})
}

// DrawBonuses renders falling bonuses as outlined squares.
func DrawBonuses(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bonus.Each(ecs.World, func(e *donburi.Entry) {
		bonus := components.Bonus.Get(e)
		o := components.Object.Get(e)
		clr, ok := bonusColors[bonus.Kind]
		if !ok {
			clr = cfg.White
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), clr, false)
		vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 2, cfg.White, false)
	})
}
