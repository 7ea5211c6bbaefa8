package resolver

import (
	"testing"

	"go.followtheprocess.codes/test"
)

func TestScope(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := newScope()

		depth, ready, ok := s.lookup("anything")
		test.False(t, ok)
		test.False(t, ready)
		test.Equal(t, depth, 0)
	})

	t.Run("declare and define", func(t *testing.T) {
		s := newScope()

		test.True(t, s.declare("something"))

		_, ready, ok := s.lookup("something")
		test.True(t, ok)
		test.False(t, ready) // Declared but not yet defined

		s.define("something")

		_, ready, ok = s.lookup("something")
		test.True(t, ok)
		test.True(t, ready)

		// Try and declare "something" again in the same scope
		test.False(t, s.declare("something"))
	})

	t.Run("parent", func(t *testing.T) {
		s := newScope()

		test.True(t, s.declare("outer"))
		s.define("outer")

		test.True(t, s.declare("shadowed"))
		s.define("shadowed")

		child := s.child()
		grandchild := child.child()

		// Shadow in the child, allowed as it's a different scope
		test.True(t, child.declare("shadowed"))

		depth, ready, ok := grandchild.lookup("outer")
		test.True(t, ok)
		test.True(t, ready)
		test.Equal(t, depth, 2) // Comes from the outermost scope

		// The nearest one wins, even though it's not ready yet
		depth, ready, ok = grandchild.lookup("shadowed")
		test.True(t, ok)
		test.False(t, ready)
		test.Equal(t, depth, 1)

		depth, _, ok = s.lookup("shadowed")
		test.True(t, ok)
		test.Equal(t, depth, 0) // Using the outer scope again

		_, _, ok = s.lookup("nope")
		test.False(t, ok)
	})
}
