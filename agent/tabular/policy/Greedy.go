package policy

// NewGreedy creates a new Greedy policy over the argument table
func NewGreedy(seed uint64, table *QTable) (*EGreedy, error) {
	return NewEGreedy(0.0, seed, table)
}
