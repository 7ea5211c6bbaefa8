package resolver

// scope is one lexical scope of local variables, mirroring an environment frame
// the interpreter will create at runtime.
//
// Each name maps to whether it is ready: false once declared, true once defined.
type scope struct {
	names  map[string]bool
	parent *scope
}

// newScope creates a new, empty [scope] with no parent.
func newScope() *scope {
	return &scope{
		names:  make(map[string]bool),
		parent: nil,
	}
}

// declare adds a not yet ready name to the scope, reporting false if the
// scope already has a variable by that name.
func (s *scope) declare(name string) bool {
	if _, exists := s.names[name]; exists {
		return false
	}

	s.names[name] = false

	return true
}

// define marks name as ready to be read in the scope.
func (s *scope) define(name string) {
	s.names[name] = true
}

// lookup walks up the scope chain to find the nearest scope that has name, returning
// the number of hops it took to get there and whether the name is ready.
//
// If no scope in the chain has name, ok is false.
func (s *scope) lookup(name string) (depth int, ready, ok bool) {
	for current := s; current != nil; current = current.parent {
		if ready, exists := current.names[name]; exists {
			return depth, ready, true
		}

		depth++
	}

	return 0, false, false
}

// child creates a new empty [scope] using the calling one as a parent.
func (s *scope) child() *scope {
	return &scope{
		names:  make(map[string]bool),
		parent: s,
	}
}
