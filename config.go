package main

import "image/color"

const (
	// --- Window ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	WindowTitle         = "Infinite Emojis"

	// --- Grid ---
	DefaultGridCols = 10
	DefaultGridRows = 10

	// --- Input ---
	WheelPanStep = 24.0 // px of pan per wheel unit

	// --- Overlay ---
	OverlayTextX  = 10
	OverlayTextY  = 10
	OverlayFontPx = 16

	// --- Files ---
	DefaultSettingsPath = "settings.yaml"
	DefaultFontPath     = "fonts/NotoEmoji-Regular.ttf"
	ScreenshotPath      = "screenshot.png"

	FontDPI = 72
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{30, 30, 35, 255}
	ColorCellStroke = color.RGBA{0, 0, 0, 70}
	ColorCellHover  = color.RGBA{0, 120, 255, 255}
	ColorCellActive = color.RGBA{50, 205, 50, 255}
	ColorCellLabel  = color.RGBA{200, 200, 205, 190}
	ColorCellInk    = color.RGBA{235, 235, 235, 255}
)
