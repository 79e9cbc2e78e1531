package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the launch configuration read from the settings file.
// Only launch parameters live here; the view itself is never
// persisted.
type Settings struct {
	Window  WindowSettings `yaml:"window"`
	Grid    GridSettings   `yaml:"grid"`
	Content string         `yaml:"content"`
	Font    string         `yaml:"font"`
}

type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GridSettings struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

func DefaultSettings() Settings {
	return Settings{
		Window:  WindowSettings{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		Grid:    GridSettings{Cols: DefaultGridCols, Rows: DefaultGridRows},
		Content: "emoji",
		Font:    DefaultFontPath,
	}
}

// LoadSettings reads filename over the defaults. On a read error the
// defaults come back along with the error so the caller can log and
// keep going.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filename)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("settings %s: %w", filename, err)
	}

	// Partial files leave zero values behind; fill those back in.
	if s.Window.Width <= 0 {
		s.Window.Width = DefaultWindowWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = DefaultWindowHeight
	}
	if s.Grid.Cols <= 0 {
		s.Grid.Cols = DefaultGridCols
	}
	if s.Grid.Rows <= 0 {
		s.Grid.Rows = DefaultGridRows
	}
	if s.Content == "" {
		s.Content = "emoji"
	}
	if s.Font == "" {
		s.Font = DefaultFontPath
	}
	return s, nil
}

func SaveSettings(s Settings, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
