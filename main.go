package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/andy-stewart-design/infinite-emojis/content"
	"github.com/andy-stewart-design/infinite-emojis/palette"
)

// Options are the command-line parameters, layered over the settings
// file. Zero values mean "keep the file's value".
type Options struct {
	ConfigPath string
	Cols       int
	Rows       int
	Width      int
	Height     int
	Content    string
	Font       string
}

func NewOptions() *Options {
	return &Options{ConfigPath: DefaultSettingsPath}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "settings file")
	fs.IntVar(&o.Cols, "cols", 0, "grid columns (overrides settings)")
	fs.IntVar(&o.Rows, "rows", 0, "grid rows (overrides settings)")
	fs.IntVar(&o.Width, "width", 0, "window width (overrides settings)")
	fs.IntVar(&o.Height, "height", 0, "window height (overrides settings)")
	fs.StringVar(&o.Content, "content", "", "content source: emoji, labels, or a .star script")
	fs.StringVar(&o.Font, "font", "", "ttf font file (overrides settings)")
}

func (o *Options) apply(s Settings) Settings {
	if o.Cols > 0 {
		s.Grid.Cols = o.Cols
	}
	if o.Rows > 0 {
		s.Grid.Rows = o.Rows
	}
	if o.Width > 0 {
		s.Window.Width = o.Width
	}
	if o.Height > 0 {
		s.Window.Height = o.Height
	}
	if o.Content != "" {
		s.Content = o.Content
	}
	if o.Font != "" {
		s.Font = o.Font
	}
	return s
}

func loadContent(s Settings) ([]string, error) {
	n := s.Grid.Cols * s.Grid.Rows
	switch s.Content {
	case "", "emoji":
		return content.Emoji(n), nil
	case "labels":
		return content.Labels(n), nil
	default:
		return content.FromScript(s.Content)
	}
}

func main() {
	opts := NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := LoadSettings(opts.ConfigPath)
	if err != nil {
		log.Println("settings:", opts.ConfigPath, "not loaded, using defaults:", err)
	}
	settings = opts.apply(settings)

	labels, err := loadContent(settings)
	if err != nil {
		log.Fatal(err)
	}
	fills := palette.CellShades(settings.Grid.Cols * settings.Grid.Rows)

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(settings, labels, fills)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
