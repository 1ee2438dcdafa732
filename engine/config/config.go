// Package config reads application settings from a TOML file and turns
// them into an engine builder.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
)

var ErrInvalid = errors.New("invalid configuration")

type File struct {
	Window Window `toml:"window"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
	Assets Assets `toml:"assets"`
}

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// off, on or desktop
	Fullscreen string  `toml:"fullscreen"`
	ScaleX     float64 `toml:"scale_x"`
	ScaleY     float64 `toml:"scale_y"`
}

type Render struct {
	// Registered platform backend; empty selects the default.
	Backend   string `toml:"backend"`
	VSync     bool   `toml:"vsync"`
	ShowFPS   bool   `toml:"show_fps"`
	AntiAlias bool   `toml:"anti_alias"`
}

type Log struct {
	Level string `toml:"level"`
}

type Assets struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// Default mirrors the defaults of engine.NewBuilder.
func Default() *File {
	return &File{
		Window: Window{
			Title:      "anima2d",
			Width:      640,
			Height:     480,
			Fullscreen: "off",
			ScaleX:     1,
			ScaleY:     1,
		},
		Render: Render{
			VSync:   true,
			ShowFPS: true,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte) (*File, error) {
	f := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, f.Window.Width, f.Window.Height)
	}
	if f.Window.ScaleX <= 0 || f.Window.ScaleY <= 0 {
		return fmt.Errorf("%w: scale %gx%g", ErrInvalid, f.Window.ScaleX, f.Window.ScaleY)
	}
	if _, err := f.FullscreenMode(); err != nil {
		return err
	}
	if _, err := core.ParseLogLevel(f.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if f.Assets.Watch && f.Assets.Dir == "" {
		return fmt.Errorf("%w: assets.watch needs assets.dir", ErrInvalid)
	}
	return nil
}

func (f *File) FullscreenMode() (platform.FullscreenMode, error) {
	switch strings.ToLower(f.Window.Fullscreen) {
	case "", "off":
		return platform.FullscreenOff, nil
	case "on":
		return platform.FullscreenOn, nil
	case "desktop":
		return platform.FullscreenDesktop, nil
	default:
		return platform.FullscreenOff, fmt.Errorf("%w: fullscreen mode %q", ErrInvalid, f.Window.Fullscreen)
	}
}

// Builder returns an engine builder carrying every setting of f.
func (f *File) Builder() (*engine.Builder, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	mode, _ := f.FullscreenMode()
	level, _ := core.ParseLogLevel(f.Log.Level)

	b := engine.NewBuilder(f.Window.Title, f.Window.Width, f.Window.Height).
		PresentVsync(f.Render.VSync).
		ShowFPS(f.Render.ShowFPS).
		AntiAlias(f.Render.AntiAlias).
		Fullscreen(mode).
		Scale(f.Window.ScaleX, f.Window.ScaleY).
		BackendName(f.Render.Backend).
		LogLevel(level)
	if f.Assets.Watch {
		b.WatchAssets(f.Assets.Dir)
	}
	return b, nil
}
