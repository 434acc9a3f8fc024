package events

import "github.com/atomicstack/menuctl/internal/logging"

type UITracer struct{}

type SearchTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Search  = SearchTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(menuLabel, label, entryType string, idx int) {
	logging.Trace("menu.enter", map[string]interface{}{
		"menu":  menuLabel,
		"label": label,
		"type":  entryType,
		"index": idx,
	})
}

func (UITracer) MenuCursor(menuLabel string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuLabel, "cursor": cursor})
}

func (UITracer) Jump(menuLabel, direction string, cursor int) {
	logging.Trace("menu.jump", map[string]interface{}{"menu": menuLabel, "direction": direction, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (SearchTracer) Open(menuLabel string) {
	logging.Trace("search.open", map[string]interface{}{"menu": menuLabel})
}

func (SearchTracer) Query(menuLabel, query string, match int) {
	logging.Trace("search.query", map[string]interface{}{"menu": menuLabel, "query": query, "match": match})
}

func (SearchTracer) Close(menuLabel string) {
	logging.Trace("search.close", map[string]interface{}{"menu": menuLabel})
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
