//go:build !sdl

package sdlhost

import (
	"context"

	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/framebuffer"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

// Run reports ErrUnavailable; SDL support needs the sdl build tag.
func Run(ctx context.Context, cfg Config, fb *framebuffer.Framebuffer, d *dispatcher.Dispatcher, bus *command.Bus) error {
	return ErrUnavailable
}

// Available reports whether this build can open SDL windows.
func Available() bool {
	return false
}
