package chmod

// lookahead iterates a slice with one element of lookahead, so a
// consumer can tell whether the element it holds is the last one.
type lookahead[T any] struct {
	items []T
	pos   int
}

func newLookahead[T any](items []T) *lookahead[T] {
	return &lookahead[T]{items: items}
}

// next returns the next element, advancing the cursor.
func (l *lookahead[T]) next() (T, bool) {
	if l.pos >= len(l.items) {
		var zero T
		return zero, false
	}
	item := l.items[l.pos]
	l.pos++
	return item, true
}

// peek returns the next element without advancing the cursor.
func (l *lookahead[T]) peek() (T, bool) {
	if l.pos >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[l.pos], true
}
