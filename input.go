package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls the mouse and keyboard each tick and forwards
// primitive events to the engine. Moves are forwarded only when the
// cursor actually changed position, so a held-still drag keeps its
// last velocity the way real move events would.
type InputSystem struct {
	game *Game

	lastMouseX int
	lastMouseY int
	hasMouse   bool
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	is.handleControlKeys()
	is.handlePointer()
	is.handleWheel()
	return nil
}

func (is *InputSystem) handleControlKeys() {
	g := is.game

	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.screenshotRequested = true
	}

	// --- Debug panel ---
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.panel.Toggle()
	}

	// --- Save Settings ---
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveSettings(g.currentSettings(), DefaultSettingsPath); err != nil {
			log.Println("save settings:", err)
		}
	}
}

func (is *InputSystem) handlePointer() {
	g := is.game
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if !is.hasMouse || mx != is.lastMouseX || my != is.lastMouseY {
		is.hasMouse = true
		is.lastMouseX, is.lastMouseY = mx, my
		g.engine.OnMove(fx, fy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.OnPress(true, fx, fy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.engine.OnPress(false, fx, fy)
		g.engine.OnClick(fx, fy)
	}
}

func (is *InputSystem) handleWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	is.game.engine.OnWheel(dx*WheelPanStep, dy*WheelPanStep)
}
