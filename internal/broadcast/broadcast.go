package broadcast

import "log"

// Broadcaster delivers display updates to the realtime transport. The
// engine only formats and hands off; actual delivery (websocket,
// channel fan-out) is an external collaborator behind this seam.
type Broadcaster interface {
	Broadcast(text string) error
}

// LogBroadcaster writes broadcasts to the process log. Used in
// development and as the fallback when no transport is wired.
type LogBroadcaster struct{}

func NewLogBroadcaster() *LogBroadcaster { return &LogBroadcaster{} }

func (l *LogBroadcaster) Broadcast(text string) error {
	log.Printf("[INFO] broadcast:\n%s", text)
	return nil
}

// NoopBroadcaster drops everything.
type NoopBroadcaster struct{}

func NewNoopBroadcaster() *NoopBroadcaster { return &NoopBroadcaster{} }

func (n *NoopBroadcaster) Broadcast(_ string) error { return nil }
