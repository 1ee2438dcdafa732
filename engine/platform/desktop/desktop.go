// Package desktop provides the windowed backend built on GLFW. The back
// buffer is uploaded to an OpenGL texture and blitted to the window on
// every present. Import it for its side effect of registering the
// "desktop" backend.
package desktop

import (
	"errors"
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/anima2d/engine/core"
	"github.com/spaghettifunk/anima2d/engine/platform"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
	platform.Register(platform.DefaultBackend, func() platform.Backend { return New() })
}

var errNoWindow = errors.New("window not opened")

var _ platform.Backend = (*Platform)(nil)

type Platform struct {
	window *glfw.Window

	texture     uint32
	framebuffer uint32
	texW, texH  int32

	scaleX, scaleY float64

	pending  *platform.EventQueue
	keyboard core.KeyboardState
	mouse    core.MouseState
}

func New() *Platform {
	return &Platform{
		scaleX:  1,
		scaleY:  1,
		pending: platform.NewEventQueue(),
	}
}

func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	core.LogDebug("glfw %s initialized", glfw.GetVersionString())
	return nil
}

func (p *Platform) OpenWindow(cfg platform.WindowConfig) error {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	switch cfg.Fullscreen {
	case platform.FullscreenOn:
		monitor = glfw.GetPrimaryMonitor()
	case platform.FullscreenDesktop:
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			break
		}
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width, height = mode.Width, mode.Height
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	p.window = window

	p.window.SetCloseCallback(p.closeCallback)
	p.window.SetKeyCallback(p.keyCallback)
	p.window.SetCharCallback(p.charCallback)
	p.window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.window.SetCursorPosCallback(p.cursorPosCallback)
	p.window.SetScrollCallback(p.scrollCallback)
	p.window.SetFramebufferSizeCallback(p.framebufferSizeCallback)

	if monitor == nil {
		if primary := glfw.GetPrimaryMonitor(); primary != nil {
			mode := primary.GetVideoMode()
			p.window.SetPos((mode.Width-width)/2, (mode.Height-height)/2)
		}
	}
	return nil
}

func (p *Platform) CreateCanvas(vsync bool) error {
	if p.window == nil {
		return errNoWindow
	}
	p.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.GenFramebuffers(1, &p.framebuffer)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	p.window.Show()
	return nil
}

func (p *Platform) SetScale(x, y float64) error {
	if x <= 0 || y <= 0 {
		return fmt.Errorf("invalid scale %gx%g", x, y)
	}
	p.scaleX, p.scaleY = x, y
	return nil
}

// Present uploads frame and stretches it over the whole framebuffer.
func (p *Platform) Present(frame *image.NRGBA) error {
	if p.window == nil {
		return errNoWindow
	}
	b := frame.Bounds()
	w, h := int32(b.Dx()), int32(b.Dy())

	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	if w != p.texW || h != p.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.framebuffer)
		gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.texture, 0)
		if status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			return fmt.Errorf("incomplete framebuffer: 0x%x", status)
		}
		p.texW, p.texH = w, h
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(frame.Stride/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	fbW, fbH := p.window.GetFramebufferSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.framebuffer)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	// Rows in the back buffer run top-down, OpenGL's run bottom-up.
	gl.BlitFramebuffer(0, 0, w, h, 0, int32(fbH), int32(fbW), 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	p.window.SwapBuffers()
	return nil
}

func (p *Platform) PollEvents() []core.Event {
	glfw.PollEvents()
	return p.pending.Drain()
}

func (p *Platform) Input() (core.KeyboardState, core.MouseState) {
	return p.keyboard, p.mouse
}

func (p *Platform) SetTitle(title string) error {
	if p.window == nil {
		return errNoWindow
	}
	p.window.SetTitle(title)
	return nil
}

func (p *Platform) Time() float64 {
	return glfw.GetTime()
}

func (p *Platform) Shutdown() error {
	if p.window != nil {
		if p.framebuffer != 0 {
			gl.DeleteFramebuffers(1, &p.framebuffer)
		}
		if p.texture != 0 {
			gl.DeleteTextures(1, &p.texture)
		}
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
	return nil
}

// toCanvas converts window coordinates to back buffer coordinates.
func (p *Platform) toCanvas(x, y float64) (int, int) {
	return int(x / p.scaleX), int(y / p.scaleY)
}

func (p *Platform) closeCallback(w *glfw.Window) {
	// The application decides whether a close request ends the loop.
	w.SetShouldClose(false)
	p.pending.Push(core.QuitEvent{})
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	sc, ok := keyMap[key]
	if !ok {
		return
	}
	down := action != glfw.Release
	p.keyboard.Set(sc, down)
	p.pending.Push(core.KeyEvent{
		Scancode: sc,
		Down:     down,
		Repeat:   action == glfw.Repeat,
	})
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	p.pending.Push(core.TextInputEvent{Text: string(char)})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := buttonMap[button]
	if !ok {
		return
	}
	down := action == glfw.Press
	p.mouse.Buttons[b] = down
	p.pending.Push(core.MouseButtonEvent{
		Button: b,
		Down:   down,
		X:      p.mouse.X,
		Y:      p.mouse.Y,
	})
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	x, y := p.toCanvas(xpos, ypos)
	if x == p.mouse.X && y == p.mouse.Y {
		return
	}
	p.pending.Push(core.MouseMotionEvent{
		X:  x,
		Y:  y,
		DX: x - p.mouse.X,
		DY: y - p.mouse.Y,
	})
	p.mouse.X, p.mouse.Y = x, y
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.pending.Push(core.MouseWheelEvent{DX: xoff, DY: yoff})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	p.pending.Push(core.WindowResizedEvent{Width: width, Height: height})
}
