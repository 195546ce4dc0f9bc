package backend

import (
	"context"
	"errors"
	"io"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/atomicstack/pixelmenu/internal/input"
	"github.com/atomicstack/pixelmenu/internal/logging/events"
)

// Event reports a button transition or a read failure from one device.
type Event struct {
	Path    string
	Button  input.Button
	Pressed bool
	Err     error
}

// Device is the subset of an evdev input device the watcher reads from.
type Device interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Opener opens the device at path.
type Opener func(path string) (Device, error)

func openEvdev(path string) (Device, error) {
	return evdev.Open(path)
}

// Watcher reads key events from evdev devices and tracks which buttons are
// held. It implements input.Source.
type Watcher struct {
	keymap Keymap

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	devices []Device

	held    [input.NumButtons]atomic.Bool
	pending [input.NumButtons]atomic.Bool

	events chan Event
	wg     sync.WaitGroup
}

var _ input.Source = (*Watcher)(nil)

// NewWatcher opens every path and starts one reader per device. Devices
// that fail to open are reported on the events channel and skipped.
func NewWatcher(paths []string, keymap Keymap) *Watcher {
	return newWatcher(paths, keymap, openEvdev)
}

func newWatcher(paths []string, keymap Keymap, open Opener) *Watcher {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		keymap: keymap,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	var failed []Event
	for _, path := range paths {
		dev, err := open(path)
		if err != nil {
			events.Host.Device(path, "error")
			failed = append(failed, Event{Path: path, Err: err})
			continue
		}
		events.Host.Device(path, "open")
		w.devices = append(w.devices, dev)
		w.wg.Add(1)
		go w.read(path, dev)
	}
	for _, evt := range failed {
		w.emit(evt)
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of button transitions and device errors. The
// channel is closed once every reader has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Snapshot reports held buttons. A button pressed and released since the
// previous call is reported once as held so short taps are not lost.
func (w *Watcher) Snapshot() input.Snapshot {
	var s input.Snapshot
	for _, b := range input.Buttons() {
		pressed := w.held[b].Load()
		if w.pending[b].Swap(false) {
			pressed = true
		}
		s = s.With(b, pressed)
	}
	return s
}

// Stop cancels the watcher and closes every device so blocked reads return.
func (w *Watcher) Stop() {
	w.cancel()
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, dev := range w.devices {
		_ = dev.Close()
	}
	w.devices = nil
}

// Wait blocks until every reader has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) read(path string, dev Device) {
	defer w.wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if w.ctx.Err() != nil || errors.Is(err, io.EOF) {
				events.Host.Device(path, "closed")
				return
			}
			events.Host.Error(err)
			w.emit(Event{Path: path, Err: err})
			return
		}
		if ev == nil || ev.Type != evdev.EV_KEY {
			continue
		}
		button, ok := w.keymap[ev.Code]
		if !ok {
			continue
		}
		switch ev.Value {
		case 0:
			w.held[button].Store(false)
			w.emit(Event{Path: path, Button: button})
		case 1:
			w.held[button].Store(true)
			w.pending[button].Store(true)
			w.emit(Event{Path: path, Button: button, Pressed: true})
		}
	}
}

// emit publishes evt without blocking the reader when nobody is listening.
func (w *Watcher) emit(evt Event) {
	select {
	case <-w.ctx.Done():
	case w.events <- evt:
	default:
	}
}
