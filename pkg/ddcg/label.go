package ddcg

// Labels issues fresh, monotonically increasing numeric labels. The
// counter starts at 99 (CD_LABEL - 1) so the first issued label is 100,
// clear of the two reserved control-destination tags (spec.md §4.4).
type Labels struct {
	counter int
}

// NewLabels creates a label generator in its initial state.
func NewLabels() *Labels {
	return &Labels{counter: 99}
}

// Fresh returns the next label identifier.
func (g *Labels) Fresh() int {
	g.counter++
	return g.counter
}
