package coloring

// palette tracks how many nodes use each color so that the maximum color in
// use can be read in O(1) after every single-node recolor. It gives the
// same answer as rescanning the assignment.
//
// Counts are sparse: memory is O(distinct colors) however large a color is.
type palette struct {
	counts map[int]int // color -> nodes holding it; zero counts are deleted
	max    int
}

func newPalette(a Assignment, nodes []int) *palette {
	p := &palette{counts: make(map[int]int, len(nodes))}
	for _, v := range nodes {
		p.add(a[v])
	}

	return p
}

func (p *palette) add(c int) {
	p.counts[c]++
	if c > p.max {
		p.max = c
	}
}

// remove drops one use of c. Losing the last use of the maximum rescans
// the distinct colors, O(|V|) at worst.
func (p *palette) remove(c int) {
	p.counts[c]--
	if p.counts[c] > 0 {
		return
	}
	delete(p.counts, c)
	if c != p.max {
		return
	}
	p.max = 0
	for k := range p.counts {
		if k > p.max {
			p.max = k
		}
	}
}

// set recolors v to c and keeps the histogram in sync.
func (p *palette) set(a Assignment, v, c int) {
	if a[v] == c {
		return
	}
	// add first so max never drops to 0 mid-update.
	p.add(c)
	p.remove(a[v])
	a[v] = c
}
