package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedDeliversInOrder(t *testing.T) {
	f := NewFeed()

	var got []string

	f.Subscribe(func(tr Transition) {
		got = append(got, "a:"+string(tr))
	})
	f.Subscribe(func(tr Transition) {
		got = append(got, "b:"+string(tr))
	})

	f.Publish(Background)
	f.Publish(Foreground)

	assert.Equal(t, []string{
		"a:background", "b:background",
		"a:foreground", "b:foreground",
	}, got)
}

func TestFeedUnsubscribe(t *testing.T) {
	f := NewFeed()

	var calls int

	unsubscribe := f.Subscribe(func(Transition) {
		calls++
	})

	f.Publish(Inactive)
	unsubscribe()
	unsubscribe()
	f.Publish(Inactive)

	assert.Equal(t, 1, calls)
	assert.Zero(t, f.Subscribers())
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	f := NewFeed()

	var (
		calls       int
		unsubscribe func()
	)

	unsubscribe = f.Subscribe(func(Transition) {
		calls++
		unsubscribe()
	})
	f.Subscribe(func(Transition) {
		calls++
	})

	f.Publish(Background)
	f.Publish(Background)

	assert.Equal(t, 3, calls)
}

func TestInForeground(t *testing.T) {
	assert.True(t, Foreground.InForeground())
	assert.False(t, Background.InForeground())
	assert.False(t, Inactive.InForeground())
}
