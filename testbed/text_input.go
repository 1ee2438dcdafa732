package testbed

import (
	"image"
	"strings"

	"github.com/spaghettifunk/anima2d/engine"
	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/render"
)

// TextInput echoes typed text. Backspace deletes, Return starts a new
// line. Lines are not wrapped.
type TextInput struct {
	engine.BaseApplication
	text []rune
}

func (t *TextInput) Text() string {
	return string(t.text)
}

func (t *TextInput) OnEvent(ctx *engine.Context, event core.Event) (bool, error) {
	if e, ok := event.(core.TextInputEvent); ok {
		t.text = append(t.text, []rune(e.Text)...)
		return true, nil
	}
	return false, nil
}

func (t *TextInput) OnUpdate(ctx *engine.Context, elapsed float64) (bool, error) {
	if ctx.Key(core.SCANCODE_BACKSPACE).Pressed && len(t.text) > 0 {
		t.text = t.text[:len(t.text)-1]
	}
	if ctx.Key(core.SCANCODE_RETURN).Pressed {
		t.text = append(t.text, '\n')
	}

	ctx.SetDrawColor(render.Black)
	ctx.Clear()
	ctx.SetDrawColor(render.White)
	_, lineHeight := ctx.MeasureString("")
	for i, line := range strings.Split(string(t.text), "\n") {
		if err := ctx.DrawString(image.Pt(0, i*lineHeight), line); err != nil {
			return false, err
		}
	}
	return true, nil
}
