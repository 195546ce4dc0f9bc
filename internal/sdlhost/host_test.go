package sdlhost

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pixelmenu/internal/data/dispatcher"
	"github.com/atomicstack/pixelmenu/internal/menu"
	"github.com/atomicstack/pixelmenu/internal/ui/command"
)

func TestFrameReportsHandlerAndWatch(t *testing.T) {
	var out bytes.Buffer
	bus := command.New(map[string]command.Handler{
		"Cake": func(menu.Entry) tea.Cmd { return command.Info("Cake", "cake ordered") },
	})
	cfg := Config{Watch: "Heater", Out: &out}
	frame(cfg, dispatcher.Result{Selected: true, Entry: menu.Entry{Label: "Cake"}}, bus)
	frame(cfg, dispatcher.Result{WatchChanged: true, Watched: 4}, bus)
	if got := out.String(); got != "cake ordered\nHeater = 4\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestReportIgnoresOtherMessages(t *testing.T) {
	var out bytes.Buffer
	report(&out, nil)
	report(&out, "unrelated")
	report(&out, command.ResultMsg{Label: "Cake", Err: errors.New("sold out")})
	if out.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", out.String())
	}
}
