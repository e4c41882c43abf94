package layout

// ReentrancyGuard suppresses re-entry into a two-way update. The zero value
// is ready to use.
//
//	if !g.CanEnter() {
//		return
//	}
//	release := g.Enter()
//	defer release()
type ReentrancyGuard struct {
	depth int
}

// CanEnter reports whether no scope is currently held.
func (g *ReentrancyGuard) CanEnter() bool {
	return g.depth == 0
}

// Enter opens a scope and returns the func that closes it.
func (g *ReentrancyGuard) Enter() (release func()) {
	g.depth++
	done := false
	return func() {
		if done {
			return
		}
		done = true
		g.depth--
	}
}
