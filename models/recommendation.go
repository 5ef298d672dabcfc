package models

// Recommendation maps a clothing category to downloaded-table row indices,
// ordered by descending similarity to the user's preference description.
type Recommendation map[string][]int

// Empty reports whether no category has any recommended item.
func (r Recommendation) Empty() bool {
	for _, indices := range r {
		if len(indices) > 0 {
			return false
		}
	}
	return true
}

// At returns the index for a category at the given cursor position, applied
// modulo the list length so any nonnegative cursor is valid.
func (r Recommendation) At(category string, cursor int) (int, bool) {
	indices := r[category]
	if len(indices) == 0 || cursor < 0 {
		return 0, false
	}
	return indices[cursor%len(indices)], true
}
