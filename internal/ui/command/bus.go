package command

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/logging/events"
	"github.com/atomicstack/pixelmenu/internal/menu"
)

// Handler reacts to a selected entry. It may return nil when there is
// nothing to report.
type Handler func(entry menu.Entry) tea.Cmd

// ResultMsg carries the outcome of a handler back to the host.
type ResultMsg struct {
	Label string
	Info  string
	Err   error
}

// Info returns a command reporting an informational message.
func Info(label, format string, args ...interface{}) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Label: label, Info: fmt.Sprintf(format, args...)}
	}
}

// request encapsulates a handler invocation.
type request struct {
	ID      string
	Label   string
	Handler Handler
	Entry   menu.Entry
}

// Bus maps selected entry labels to handlers.
type Bus struct {
	handlers map[string]Handler
	seq      int
}

// New initialises a command bus with the given label handlers.
func New(handlers map[string]Handler) *Bus {
	b := &Bus{handlers: make(map[string]Handler, len(handlers))}
	for label, h := range handlers {
		b.handlers[label] = h
	}
	return b
}

// Dispatch builds the request for a selected entry and executes it.
func (b *Bus) Dispatch(entry menu.Entry) tea.Cmd {
	b.seq++
	return b.execute(request{
		ID:      strconv.Itoa(b.seq),
		Label:   entry.Label,
		Handler: b.handlers[entry.Label],
		Entry:   entry,
	})
}

// execute wraps a handler into a Bubble Tea command while emitting trace logs.
func (b *Bus) execute(req request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req.Entry)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
