// Package events groups the trace points emitted by the application into
// typed tracers, so call sites read as events.Nav.Cursor(...) rather than
// raw logging.Trace calls.
package events

import "github.com/tarbetu/portfolio/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]interface{}{"width": width, "height": height})
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}
