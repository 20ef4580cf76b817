package reviews

// DefaultPageSize is the number of reviews requested per page.
const DefaultPageSize = 20

// State is a snapshot of the list.
type State struct {
	Items      []Item
	Offset     int
	PageSize   int
	Count      int
	CountKnown bool
	// ShouldLoad is false while a request is in flight and once every page
	// has been loaded.
	ShouldLoad bool
}

// Exhausted reports whether every page has been loaded.
func (s State) Exhausted() bool {
	return s.CountKnown && s.Offset >= s.Count
}

// Loading reports whether a request is in flight.
func (s State) Loading() bool {
	return !s.ShouldLoad && !s.Exhausted()
}

// Reviews returns the number of review rows, excluding the count row.
func (s State) Reviews() int {
	n := 0
	for _, it := range s.Items {
		if it.Key() != countRowKey {
			n++
		}
	}
	return n
}

func (s State) clone() State {
	s.Items = append([]Item(nil), s.Items...)
	return s
}

func (s State) countRowIndex() int {
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].Key() == countRowKey {
			return i
		}
	}
	return -1
}
