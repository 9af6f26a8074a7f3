package main

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/paperrider/editor"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world/component"
)

const (
	editNudge      = 1
	editNudgeFast  = 10
	editRotateStep = 5
	editBoostStep  = 15
)

var addKeys = []struct {
	key  ebiten.Key
	kind editor.Kind
	size mgl32.Vec2
}{
	{ebiten.Key1, editor.KindObstacle, mgl32.Vec2{60, 60}},
	{ebiten.Key2, editor.KindBoost, mgl32.Vec2{80, 20}},
	{ebiten.Key3, editor.KindPortal, mgl32.Vec2{20, 120}},
	{ebiten.Key4, editor.KindGoal, mgl32.Vec2{4, 600}},
}

// updateEditor handles the editor keys. It reports whether the editor
// consumed the frame, in which case the level is not stepped.
func (g *Game) updateEditor() bool {
	e := g.editor
	if e == nil {
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = nil
		if e.Editing() {
			e.TestPlay()
			log.Printf("editor: test play")
		} else {
			e.Enter()
			log.Printf("editor: editing %s", e.Path)
		}
		return true
	}
	if !e.Editing() {
		return false
	}

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := e.Save(); err != nil {
			log.Printf("editor: %v", err)
		}
		return true
	}

	cursor := g.cursorWorld()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sel, ok := e.Pick(cursor); ok {
			g.selected = &sel
		} else {
			g.selected = nil
		}
	}

	for _, a := range addKeys {
		if !inpututil.IsKeyJustPressed(a.key) {
			continue
		}
		r := geom.NewRect(cursor.X()-a.size.X()/2, cursor.Y()-a.size.Y()/2, a.size.X(), a.size.Y())
		if a.kind == editor.KindGoal {
			r.Pos[1] = 0
			r.Size[1] = g.level.ScreenHeight
		}
		sel, err := e.Add(a.kind, r)
		if err != nil {
			log.Printf("editor: %v", err)
			continue
		}
		g.selected = &sel
	}

	if g.selected == nil {
		return true
	}
	g.editSelection(*g.selected)
	return true
}

func (g *Game) editSelection(sel editor.Selection) {
	e := g.editor
	step := float32(editNudge)
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = editNudgeFast
	}

	var move mgl32.Vec2
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		move[0] -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		move[0] += step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		move[1] -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		move[1] += step
	}

	var size mgl32.Vec2
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		size[0] -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		size[0] += step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		size[1] -= step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		size[1] += step
	}

	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		err = e.Remove(sel)
		g.selected = nil
	case move != (mgl32.Vec2{}):
		err = e.Move(sel, move)
	case size != (mgl32.Vec2{}):
		err = e.Resize(sel, size)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		err = e.Rotate(sel, -editRotateStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		err = e.Rotate(sel, editRotateStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyB) && sel.Kind == editor.KindBoost:
		b := g.level.Boosts[sel.Index]
		err = e.SetBoost(sel.Index, b.BoostAngle+editBoostStep, b.BoostPower)
	case inpututil.IsKeyJustPressed(ebiten.KeyG) && sel.Kind == editor.KindPortal:
		p := g.level.Portals[sel.Index]
		kind := component.PortalGravityInvert
		if p.Kind == component.PortalGravityInvert {
			kind = component.PortalColorShuffle
		}
		err = e.SetPortal(sel.Index, kind, p.Enable)
	case inpututil.IsKeyJustPressed(ebiten.KeyF) && sel.Kind == editor.KindPortal:
		p := g.level.Portals[sel.Index]
		err = e.SetPortal(sel.Index, p.Kind, !p.Enable)
	case inpututil.IsKeyJustPressed(ebiten.KeyT) && sel.Kind == editor.KindObstacle:
		o := g.level.Obstacles[sel.Index]
		err = e.SetObstacleFlags(sel.Index, o.CollidesWithPlane, o.CollidesWithRider, !o.Body.Triangle)
	}
	if err != nil {
		log.Printf("editor: %v", err)
	}
}

func (g *Game) cursorWorld() mgl32.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl32.Vec2{float32(x) + g.level.Camera.X, float32(y)}
}
