package events

import "github.com/tarbetu/portfolio/internal/logging"

type IntroTracer struct{}

var Intro = IntroTracer{}

func (IntroTracer) Advance(phase string, finalized bool) {
	logging.Trace("intro.advance", map[string]interface{}{
		"phase":     phase,
		"finalized": finalized,
	})
}

func (IntroTracer) Replay(phase string) {
	logging.Trace("intro.replay", map[string]interface{}{"phase": phase})
}

func (IntroTracer) Skip(key string) {
	logging.Trace("intro.skip", map[string]interface{}{"key": key})
}
