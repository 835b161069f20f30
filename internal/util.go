package internal

// ReconstructPath walks parent links from current until parentOf returns
// root, and returns the visited ids from the root side to current.
func ReconstructPath[ID comparable](
	current ID,
	root ID,
	parentOf func(ID) ID,
) []ID {
	path := []ID{current}
	for {
		previous := parentOf(current)
		if previous == root {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
