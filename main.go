/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/config"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
	_ "github.com/spaghettifunk/anima2d/engine/platform/desktop"
	"github.com/spaghettifunk/anima2d/testbed"
)

func main() {
	defer engine.ReportPanic()

	var configPath = flag.String("config", "", "Path to a TOML configuration file")
	var demo = flag.String("demo", "shapes", "Demo to run: "+strings.Join(testbed.Names(), ", "))
	var backend = flag.String("backend", "", "Platform backend: "+strings.Join(platform.Backends(), ", "))
	var frames = flag.Int("frames", 0, "Stop after this many frames (0 runs until the window is closed)")
	var screenshot = flag.String("screenshot", "", "Write the last frame to this PNG file (headless backend only)")
	flag.Parse()

	if err := run(*configPath, *demo, *backend, *frames, *screenshot); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

func run(configPath, demoName, backendName string, frames int, screenshot string) error {
	d, ok := testbed.Lookup(demoName)
	if !ok {
		return fmt.Errorf("unknown demo %q", demoName)
	}

	cfg := config.Default()
	cfg.Window.Title = d.Title
	cfg.Window.Width, cfg.Window.Height = testbed.ScreenWidth, testbed.ScreenHeight
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if backendName != "" {
		cfg.Render.Backend = backendName
	}

	b, err := cfg.Builder()
	if err != nil {
		return err
	}

	var headless *platform.Headless
	if cfg.Render.Backend == platform.HeadlessBackend {
		headless = platform.NewHeadless()
		b.Backend(headless)
	}

	app := d.New()
	if frames > 0 {
		app = &frameLimit{Application: app, left: frames}
	}
	if err := b.Start(app); err != nil {
		return err
	}

	if screenshot != "" {
		if headless == nil {
			return fmt.Errorf("screenshots need the %s backend", platform.HeadlessBackend)
		}
		if err := headless.SaveFrame(screenshot); err != nil {
			return err
		}
		core.LogInfo("saved %s after %d frames", screenshot, headless.Frames())
	}
	return nil
}

type frameLimit struct {
	engine.Application
	left int
}

func (f *frameLimit) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	ok, err := f.Application.OnUpdate(ctx, elapsed)
	f.left--
	return ok && f.left > 0, err
}
