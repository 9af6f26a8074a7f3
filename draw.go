package main

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/paperrider/editor"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
	"golang.org/x/image/colornames"
)

// paletteColors are the obstacle colours a colour portal shuffles between.
var paletteColors = [world.PaletteSize]color.RGBA{
	colornames.Lightslategray,
	colornames.Indianred,
	colornames.Darkseagreen,
	colornames.Burlywood,
}

var particleColors = [component.ParticleKindCount]color.RGBA{
	component.ParticleBoostTrail: colornames.Lightskyblue,
	component.ParticlePlaneCrash: colornames.Orangered,
	component.ParticleRiderCrash: colornames.Gold,
}

func drawLevel(screen *ebiten.Image, l *world.Level, debug bool) {
	if l == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)
	camX := l.Camera.X

	for i, o := range l.Obstacles {
		strokeRect(screen, o.Body, camX, 2, paletteColors[l.Palette[i%world.PaletteSize]])
	}
	for _, b := range l.Boosts {
		strokeRect(screen, b.Body, camX, 1, colornames.Limegreen)
		rad := mgl32.DegToRad(b.BoostAngle)
		c := b.Body.Center()
		tip := c.Add(mgl32.Vec2{math32.Cos(rad), -math32.Sin(rad)}.Mul(20))
		strokeSegment(screen, c, tip, camX, 2, colornames.Limegreen)
	}
	for _, p := range l.Portals {
		clr := colornames.Mediumpurple
		if p.Kind == component.PortalColorShuffle {
			clr = colornames.Gold
		}
		if !p.Enable {
			clr = colornames.Gray
		}
		strokeRect(screen, p.Body, camX, 2, clr)
	}
	if !l.GoalLine.Degenerate() {
		strokeRect(screen, l.GoalLine, camX, 3, colornames.White)
	}

	planeColor := colornames.Steelblue
	if l.Plane.Crashed() {
		planeColor = colornames.Crimson
	}
	riderColor := colornames.Orange
	if l.Rider.Is(component.RiderCrashed) {
		riderColor = colornames.Crimson
	}
	strokeRect(screen, l.Plane.RenderZone, camX, 2, planeColor)
	strokeRect(screen, l.Rider.RenderZone, camX, 2, riderColor)

	for i := range l.Emitters {
		em := &l.Emitters[i]
		for _, p := range em.Particles {
			vector.DrawFilledRect(screen, p.Pos.X()-camX-p.Size/2, p.Pos.Y()-p.Size/2, p.Size, p.Size, particleColors[em.Kind], false)
		}
	}

	if !debug {
		return
	}
	strokeRect(screen, l.Plane.Body, camX, 1, colornames.Aqua)
	strokeRect(screen, l.Rider.Body, camX, 1, colornames.Yellow)
	if !l.WrapEdges {
		top, bottom := l.ScreenBounds()
		strokeRect(screen, top, camX, 1, colornames.Red)
		strokeRect(screen, bottom, camX, 1, colornames.Red)
	}
	c := l.Plane.Body.Center()
	strokeSegment(screen, c, c.Add(l.Plane.Velocity.Mul(0.1)), camX, 1, colornames.Aqua)
}

func drawSelection(screen *ebiten.Image, l *world.Level, sel *editor.Selection) {
	if l == nil || sel == nil {
		return
	}
	var r geom.OrientedRect
	switch sel.Kind {
	case editor.KindPlane:
		r = l.Plane.Body
	case editor.KindGoal:
		r = l.GoalLine
	case editor.KindObstacle:
		if sel.Index >= len(l.Obstacles) {
			return
		}
		r = l.Obstacles[sel.Index].Body
	case editor.KindBoost:
		if sel.Index >= len(l.Boosts) {
			return
		}
		r = l.Boosts[sel.Index].Body
	case editor.KindPortal:
		if sel.Index >= len(l.Portals) {
			return
		}
		r = l.Portals[sel.Index].Body
	}
	strokeRect(screen, r, l.Camera.X, 3, colornames.Fuchsia)
}

func drawHUD(screen *ebiten.Image, l *world.Level, line string) {
	if l != nil {
		switch {
		case l.GameWon:
			line += "\nGoal! R to restart"
		case l.GameOver:
			line += "\nCrashed. R to restart"
		case l.Paused:
			line += "\nPaused"
		}
	}
	ebitenutil.DebugPrint(screen, line)
}

// outline returns the drawn corners of r in order around its edge.
func outline(r geom.OrientedRect) []mgl32.Vec2 {
	c := r.Corners()
	if r.Triangle {
		return []mgl32.Vec2{c[1], c[3], c[2]}
	}
	return []mgl32.Vec2{c[0], c[1], c[3], c[2]}
}

func strokeRect(screen *ebiten.Image, r geom.OrientedRect, camX, width float32, clr color.Color) {
	if r.Degenerate() {
		return
	}
	pts := outline(r)
	for i := range pts {
		strokeSegment(screen, pts[i], pts[(i+1)%len(pts)], camX, width, clr)
	}
}

func strokeSegment(screen *ebiten.Image, a, b mgl32.Vec2, camX, width float32, clr color.Color) {
	vector.StrokeLine(screen, a.X()-camX, a.Y(), b.X()-camX, b.Y(), width, clr, true)
}
