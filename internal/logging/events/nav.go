package events

import "github.com/tarbetu/portfolio/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(index int, label string) {
	logging.Trace("nav.cursor", map[string]interface{}{"index": index, "label": label})
}

func (NavTracer) LockIn(index int) {
	logging.Trace("nav.lock-in", map[string]interface{}{"index": index})
}

func (NavTracer) Unlock(index int) {
	logging.Trace("nav.unlock", map[string]interface{}{"index": index})
}

func (NavTracer) Scroll(offset int) {
	logging.Trace("nav.scroll", map[string]interface{}{"offset": offset})
}

func (NavTracer) Title(index int, title string) {
	logging.Trace("nav.title", map[string]interface{}{"index": index, "title": title})
}
