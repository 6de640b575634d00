package system

import (
	"sync"

	"autoflow/internal/features/automation"
)

// RunBroadcaster fans engine run outcomes out to websocket subscribers.
// Slow subscribers drop events instead of blocking the engine.
type RunBroadcaster struct {
	mu   sync.RWMutex
	subs map[chan *automation.RunLog]struct{}
}

func NewRunBroadcaster() *RunBroadcaster {
	return &RunBroadcaster{
		subs: make(map[chan *automation.RunLog]struct{}),
	}
}

// PublishRun implements automation.RunPublisher.
func (b *RunBroadcaster) PublishRun(log *automation.RunLog) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- log:
		default:
		}
	}
}

func (b *RunBroadcaster) Subscribe() chan *automation.RunLog {
	ch := make(chan *automation.RunLog, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *RunBroadcaster) Unsubscribe(ch chan *automation.RunLog) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
