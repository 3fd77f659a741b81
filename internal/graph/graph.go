// Package graph provides dependency ordering over a fixed set of nodes
// identified by dense integer indices. It is used by the form strategy to
// resolve attachment targets before their dependents and to detect
// attachment cycles deterministically.
package graph

// color values for depth-first traversal state.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully processed
)

// Sort computes a visit order for n nodes such that every node appears
// after all nodes it depends on. deps returns the dependency indices of a
// node; out-of-range indices are ignored.
//
// If the dependency relation contains a cycle, Sort returns a nil order
// and the first cycle found as an ordered list of node indices (each node
// depending on the next, the last depending on the first). Detection runs
// depth-first with white/gray/black coloring, so results are deterministic
// for a given input.
func Sort(n int, deps func(i int) []int) (order []int, cycle []int) {
	colors := make([]int, n)
	order = make([]int, 0, n)
	var stack []int

	var visit func(i int) []int
	visit = func(i int) []int {
		colors[i] = gray
		stack = append(stack, i)
		for _, d := range deps(i) {
			if d < 0 || d >= n || d == i {
				if d == i {
					return []int{i} // self-loop
				}
				continue
			}
			switch colors[d] {
			case gray:
				return extractCycle(stack, d)
			case white:
				if c := visit(d); c != nil {
					return c
				}
			}
		}
		stack = stack[:len(stack)-1]
		colors[i] = black
		order = append(order, i)
		return nil
	}

	for i := 0; i < n; i++ {
		if colors[i] != white {
			continue
		}
		if c := visit(i); c != nil {
			return nil, c
		}
	}
	return order, nil
}

// extractCycle slices the DFS path from the first occurrence of start,
// yielding the minimal cycle currently on the stack.
func extractCycle(stack []int, start int) []int {
	for i, v := range stack {
		if v == start {
			cycle := make([]int, len(stack)-i)
			copy(cycle, stack[i:])
			return cycle
		}
	}
	return stack // unreachable for well-formed traversals
}
