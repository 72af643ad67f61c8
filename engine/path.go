package engine

// ComputePath returns the tiles a token passes through moving from start to
// end, both inclusive, one index at a time. Each element is one animation tick.
func ComputePath(start, end int) []int {
	step := 1
	n := end - start
	if n < 0 {
		step = -1
		n = -n
	}
	path := make([]int, 0, n+1)
	for pos := start; ; pos += step {
		path = append(path, pos)
		if pos == end {
			break
		}
	}
	return path
}
