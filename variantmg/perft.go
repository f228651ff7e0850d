package variantmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Every branch plays on its own clone, so positions never need unmaking.
func Perft(pos Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := pos.Clone()
		child.Play(m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf
// nodes reachable after it. Useful for debugging.
func PerftDivide(pos Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range pos.LegalMoves() {
		child := pos.Clone()
		child.Play(m)
		result[m] = Perft(child, depth-1)
	}
	return result
}

type perftEntry struct {
	hash  uint64
	depth int
	nodes uint64
}

// PerftCache memoizes subtree counts by position hash. It is a fixed-size
// table with always-replace slots; a zero-sized cache stores nothing.
type PerftCache struct {
	entries []perftEntry
	hits    uint64
}

// NewPerftCache returns a cache with room for size entries.
func NewPerftCache(size int) *PerftCache {
	if size < 0 {
		size = 0
	}
	return &PerftCache{entries: make([]perftEntry, size)}
}

func (c *PerftCache) Hits() uint64 { return c.hits }

func (c *PerftCache) get(hash uint64, depth int) (uint64, bool) {
	if len(c.entries) == 0 {
		return 0, false
	}
	e := &c.entries[hash%uint64(len(c.entries))]
	if e.hash == hash && e.depth == depth && e.nodes != 0 {
		c.hits++
		return e.nodes, true
	}
	return 0, false
}

func (c *PerftCache) put(hash uint64, depth int, nodes uint64) {
	if len(c.entries) == 0 {
		return
	}
	c.entries[hash%uint64(len(c.entries))] = perftEntry{hash: hash, depth: depth, nodes: nodes}
}

// PerftCached is Perft with transpositions looked up in cache.
func PerftCached(pos Position, depth int, cache *PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(pos.LegalMoves()))
	}
	hash := pos.Hash()
	if n, ok := cache.get(hash, depth); ok {
		return n
	}
	var nodes uint64
	for _, m := range pos.LegalMoves() {
		child := pos.Clone()
		child.Play(m)
		nodes += PerftCached(child, depth-1, cache)
	}
	cache.put(hash, depth, nodes)
	return nodes
}
