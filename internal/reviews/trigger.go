package reviews

// DefaultLoadMultiplier is how many viewports of content may remain below
// the scroll target before the next page is requested.
const DefaultLoadMultiplier = 2.5

// ShouldLoadMore reports whether a scroll coming to rest at targetOffset
// leaves at most multiplier viewports of content below it. Evaluating the
// target rather than the live offset schedules the fetch before the user
// gets there.
func ShouldLoadMore(viewportHeight, contentHeight, targetOffset, multiplier float64) bool {
	remaining := contentHeight - viewportHeight - targetOffset
	return remaining <= multiplier*viewportHeight
}
