//go:build sdl

package sdlhost

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/framebuffer"
	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

// ButtonForKey maps a keyboard key to a menu button.
func ButtonForKey(code sdl.Keycode) (input.Button, bool) {
	switch code {
	case sdl.K_UP:
		return input.ButtonUp, true
	case sdl.K_DOWN:
		return input.ButtonDown, true
	case sdl.K_LEFT:
		return input.ButtonLeft, true
	case sdl.K_RIGHT:
		return input.ButtonRight, true
	case sdl.K_RETURN, sdl.K_SPACE:
		return input.ButtonPrimary, true
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return input.ButtonSecondary, true
	}
	return 0, false
}

// Run opens a window sized to the framebuffer times cfg.Scale and drives d
// until the window closes, q is pressed or ctx is done.
func Run(ctx context.Context, cfg Config, fb *framebuffer.Framebuffer, d *dispatcher.Dispatcher, bus *command.Bus) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	size := fb.Size()
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(size.X*scale), int32(size.Y*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()
	if err := renderer.SetLogicalSize(int32(size.X), int32(size.Y)); err != nil {
		return fmt.Errorf("logical size: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(size.X), int32(size.Y))
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	held := &input.Held{}
	var source input.Source = held
	if cfg.Extra != nil {
		source = input.Merge{held, cfg.Extra}
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				events.App.Stop("window closed")
				return nil
			case *sdl.KeyboardEvent:
				if e.Repeat != 0 {
					continue
				}
				down := e.Type == sdl.KEYDOWN
				if down && e.Keysym.Sym == sdl.K_q {
					events.App.Stop("quit")
					return nil
				}
				if b, ok := ButtonForKey(e.Keysym.Sym); ok {
					held.Set(b, down)
					events.Host.Key(sdl.GetKeyName(e.Keysym.Sym), b.String())
				}
			}
		}

		res := d.Handle(source.Snapshot())
		frame(cfg, res, bus)
		if res.Drew {
			if err := present(renderer, texture, fb); err != nil {
				return err
			}
		}
		if err := cfg.Pacer.Wait(ctx); err != nil {
			events.App.Stop(err.Error())
			return nil
		}
	}
}

func present(renderer *sdl.Renderer, texture *sdl.Texture, fb *framebuffer.Framebuffer) error {
	img := fb.Image()
	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	if err := renderer.Clear(); err != nil {
		return fmt.Errorf("renderer clear: %w", err)
	}
	if err := renderer.Copy(texture, nil, nil); err != nil {
		return fmt.Errorf("renderer copy: %w", err)
	}
	renderer.Present()
	return nil
}

// Available reports whether this build can open SDL windows.
func Available() bool {
	return true
}
