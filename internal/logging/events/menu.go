package events

import "github.com/atomicstack/menuctl/internal/logging"

type StackTracer struct{}

type RefreshTracer struct{}

type SettingTracer struct{}

type BackendTracer struct{}

var (
	Stack   = StackTracer{}
	Refresh = RefreshTracer{}
	Setting = SettingTracer{}
	Backend = BackendTracer{}
)

func (StackTracer) Push(label, entryType string, stackPtr int) {
	logging.Trace("stack.push", map[string]interface{}{"label": label, "type": entryType, "ptr": stackPtr})
}

func (StackTracer) Pop(label, entryType string, stackPtr int) {
	logging.Trace("stack.pop", map[string]interface{}{"label": label, "type": entryType, "ptr": stackPtr})
}

func (StackTracer) Flush(needle, finalType string) {
	logging.Trace("stack.flush", map[string]interface{}{"needle": needle, "finalType": finalType})
}

func (RefreshTracer) Rebuild(size int) {
	logging.Trace("refresh.rebuild", map[string]interface{}{"size": size})
}

func (RefreshTracer) Clamp(from, to int) {
	logging.Trace("refresh.clamp", map[string]interface{}{"from": from, "to": to})
}

func (RefreshTracer) Deferred(reason string) {
	logging.Trace("refresh.deferred", map[string]interface{}{"reason": reason})
}

func (SettingTracer) Change(name, value string) {
	logging.Trace("setting.change", map[string]interface{}{"name": name, "value": value})
}

func (BackendTracer) Watch(dir string) {
	logging.Trace("backend.watch", map[string]interface{}{"dir": dir})
}

func (BackendTracer) Change(dir, op string) {
	logging.Trace("backend.change", map[string]interface{}{"dir": dir, "op": op})
}

func (BackendTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"error": err.Error()})
}
