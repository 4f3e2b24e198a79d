package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/fruitfight/components"
	cfg "github.com/automoto/fruitfight/config"
	"github.com/automoto/fruitfight/shared/gamemath"
	"github.com/automoto/fruitfight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	colorBackground = color.RGBA{20, 20, 30, 255}
	colorObstacle   = color.RGBA{60, 60, 80, 255}
	colorPlayer     = color.RGBA{90, 200, 90, 255}
	colorHostile    = color.RGBA{200, 70, 70, 255}
	colorBoss       = color.RGBA{150, 30, 120, 255}
	colorProjectile = color.RGBA{250, 220, 80, 255}
	colorSummon     = color.RGBA{80, 200, 220, 255}
	colorHeal       = color.RGBA{90, 230, 120, 120}
	colorHarm       = color.RGBA{240, 130, 50, 120}
	colorHealthBar  = color.RGBA{230, 40, 40, 255}
)

// Game drives a session from ebiten's update loop and draws it with
// primitive shapes.
type Game struct {
	run    *run
	width  int
	height int
}

func (g *Game) Update() error {
	if g.run.session.Alive(g.run.player) {
		g.steer()
	}
	g.run.step(1 / float64(ebiten.TPS()))
	return nil
}

// steer moves the player with the arrow keys or WASD.
func (g *Game) steer() {
	var dir dmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dir.Y++
	}
	dir, ok := gamemath.Normalize(dir)
	if !ok {
		return
	}

	s, player := g.run.session, g.run.player
	pos, _ := s.Position(player)
	speed := cfg.Player.Speed * s.SpeedMultiplier(player)
	next := gamemath.Translate(pos, gamemath.Scale(dir, speed), 1/float64(ebiten.TPS()))
	next.X = clamp(next.X, 0, float64(g.width))
	next.Y = clamp(next.Y, 0, float64(g.height))
	s.Move(player, next)
	s.Face(player, dir)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w := g.run.session.World()

	if g.run.arena != nil {
		for _, o := range g.run.arena.Obstacles {
			vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), colorObstacle, false)
		}
	}

	components.AreaEffect.Each(w, func(e *donburi.Entry) {
		a := components.AreaEffect.Get(e)
		clr := colorHarm
		if a.DamagePerTick < 0 {
			clr = colorHeal
		}
		vector.StrokeCircle(screen, float32(a.Position.X), float32(a.Position.Y), float32(a.Radius), 2, clr, true)
	})

	components.Object.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		clr, ok := colorOf(e)
		if !ok {
			return
		}
		vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), clr, false)
		if e.HasComponent(components.Health) {
			drawHealthBar(screen, obj, components.Health.Get(e))
		}
	})

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s, player := g.run.session, g.run.player
	c := s.Combo()
	hp, maxHP, _ := s.Health(player)

	text := fmt.Sprintf("Wave %d  HP %d/%d\nCombo %d (%s x%.2f)  Best %d  Points %d",
		g.run.director.wave, hp, maxHP, c.Current, c.Tier, c.Multiplier, c.Max, c.TotalPoints)
	if slots, ok := s.Slots(player); ok {
		for _, slot := range slots {
			if !slot.Occupied {
				continue
			}
			if def, ok := s.Catalog().Lookup(slot.Key); ok {
				text += fmt.Sprintf("\n%-6s %-16s %4.1fs", slot.Key.Slot, def.Name, max(0, def.Cooldown-slot.Elapsed))
			}
		}
	}
	if !s.Alive(player) {
		text += "\n\nDefeated. Close the window to save the run."
	}
	ebitenutil.DebugPrint(screen, text)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func colorOf(e *donburi.Entry) (color.Color, bool) {
	switch {
	case e.HasComponent(tags.Player):
		return colorPlayer, true
	case e.HasComponent(tags.Hostile):
		if components.Combatant.Get(e).Boss {
			return colorBoss, true
		}
		return colorHostile, true
	case e.HasComponent(tags.Projectile):
		return colorProjectile, true
	case e.HasComponent(tags.Summon):
		return colorSummon, true
	}
	return nil, false
}

func drawHealthBar(screen *ebiten.Image, obj *components.ObjectData, hp *components.HealthData) {
	if hp.Max <= 0 || hp.Current == hp.Max {
		return
	}
	frac := float32(hp.Current) / float32(hp.Max)
	vector.DrawFilledRect(screen, float32(obj.X), float32(obj.Y)-6, float32(obj.W)*frac, 3, colorHealthBar, false)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
