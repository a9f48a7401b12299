// Package activity carries the foreground and background transitions of the
// host application to whoever is watching them.
package activity

// Transition is a change in whether the app is in the foreground.
type Transition string

const (
	Foreground Transition = "foreground"
	Background Transition = "background"
	// Inactive is a transient "not in the foreground" state. Consumers treat
	// it like Background.
	Inactive Transition = "inactive"
)

// InForeground reports whether the transition puts the app in the foreground.
func (t Transition) InForeground() bool {
	return t == Foreground
}

// Handler receives transitions.
type Handler func(Transition)

// Source is a stream of transitions.
type Source interface {
	// Subscribe registers h and returns a function that removes it. The
	// returned function is safe to call more than once.
	Subscribe(h Handler) (unsubscribe func())
}

type subscriber struct {
	h  Handler
	id int
}

// Feed is a Source fed by the host through Publish. Handlers run
// synchronously on the publishing goroutine, in subscription order. A Feed is
// not safe for concurrent use; publish from the session's event loop.
type Feed struct {
	subs   []subscriber
	nextID int
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Subscribe implements Source.
func (f *Feed) Subscribe(h Handler) func() {
	f.nextID++
	id := f.nextID

	f.subs = append(f.subs, subscriber{id: id, h: h})

	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers t to every current subscriber.
func (f *Feed) Publish(t Transition) {
	subs := make([]subscriber, len(f.subs))
	copy(subs, f.subs)

	for _, s := range subs {
		s.h(t)
	}
}

// Subscribers returns the number of registered handlers.
func (f *Feed) Subscribers() int {
	return len(f.subs)
}
