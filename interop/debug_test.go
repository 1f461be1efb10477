package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugRelayForwardsToLatest(t *testing.T) {
	var r debugRelay
	var first, second []string

	r.forward("dropped")

	a := r.set(func(msg string) { first = append(first, msg) })
	r.forward("one")
	b := r.set(func(msg string) { second = append(second, msg) })
	r.forward("two")

	assert.Equal(t, []string{"one"}, first)
	assert.Equal(t, []string{"two"}, second)
	assert.NotSame(t, a, b)
}

func TestDebugRelayReleaseKeepsNewerRegistration(t *testing.T) {
	var r debugRelay
	var got []string

	stale := r.set(func(string) {})
	current := r.set(func(msg string) { got = append(got, msg) })

	r.release(stale)
	r.forward("still here")
	assert.Equal(t, []string{"still here"}, got)

	r.release(current)
	r.forward("gone")
	assert.Equal(t, []string{"still here"}, got)

	r.release(nil)
}
