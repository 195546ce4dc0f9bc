package events

import "github.com/atomicstack/pixelmenu/internal/logging"

type MenuTracer struct{}

type HostTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Host    = HostTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Cursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": title, "cursor": cursor})
}

func (MenuTracer) Select(title, label string) {
	logging.Trace("menu.select", map[string]interface{}{"menu": title, "label": label})
}

func (MenuTracer) Enter(title, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": title, "label": label})
}

func (MenuTracer) Exit(title, label string) {
	logging.Trace("menu.exit", map[string]interface{}{"menu": title, "label": label})
}

func (MenuTracer) Edit(title, label, glyph string) {
	logging.Trace("menu.edit", map[string]interface{}{"menu": title, "label": label, "value": glyph})
}

func (MenuTracer) Render(title string, cursor int) {
	logging.Trace("menu.render", map[string]interface{}{"menu": title, "cursor": cursor})
}

func (MenuTracer) DrawError(title string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.draw.error", map[string]interface{}{"menu": title, "error": err.Error()})
}

func (HostTracer) Tick(frame uint64, dirty bool) {
	logging.Trace("host.tick", map[string]interface{}{"frame": frame, "dirty": dirty})
}

func (HostTracer) Key(key, button string) {
	logging.Trace("host.key", map[string]interface{}{"key": key, "button": button})
}

func (HostTracer) Device(path, state string) {
	logging.Trace("host.device", map[string]interface{}{"path": path, "state": state})
}

func (HostTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("host.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
