package events

import "sync"

// Broadcaster is an explicit observer registry: subscribers register a
// callback and receive every published event until they cancel. It replaces
// the page-wide ambient event bus of a browser app with a typed contract.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

// NewBroadcaster returns an empty registry.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: map[int]func(Event){}}
}

// Subscribe registers fn and returns a cancel func. Cancel is idempotent.
func (b *Broadcaster) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish delivers e to every current subscriber. Callbacks run on the
// publishing goroutine; subscribers that need to block should hand off.
func (b *Broadcaster) Publish(e Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
