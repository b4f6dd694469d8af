package nonempty

// List is an ordered sequence holding at least one element. The
// guarantee is by construction: the zero value is not meaningful and
// every constructor requires a head element.
type List[T any] struct {
	head T
	rest []T
}

func One[T any](head T) List[T] {
	return List[T]{head: head}
}

func Of[T any](head T, rest ...T) List[T] {
	r := make([]T, len(rest))
	copy(r, rest)
	return List[T]{head: head, rest: r}
}

// FromSlice builds a List from an ordinary slice; ok is false when the
// slice is empty.
func FromSlice[T any](s []T) (List[T], bool) {
	if len(s) == 0 {
		return List[T]{}, false
	}
	return Of(s[0], s[1:]...), true
}

func (l List[T]) Head() T {
	return l.head
}

func (l List[T]) Rest() []T {
	r := make([]T, len(l.rest))
	copy(r, l.rest)
	return r
}

func (l List[T]) Len() int {
	return 1 + len(l.rest)
}

// Slice returns the elements in order as a fresh ordinary slice.
func (l List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	s = append(s, l.head)
	s = append(s, l.rest...)
	return s
}

// Concat returns a new List holding the receiver's elements followed by
// other's, in order. Neither operand is modified.
func (l List[T]) Concat(other List[T]) List[T] {
	r := make([]T, 0, len(l.rest)+other.Len())
	r = append(r, l.rest...)
	r = append(r, other.head)
	r = append(r, other.rest...)
	return List[T]{head: l.head, rest: r}
}

// Append returns a new List with items added at the end.
func (l List[T]) Append(items ...T) List[T] {
	r := make([]T, 0, len(l.rest)+len(items))
	r = append(r, l.rest...)
	r = append(r, items...)
	return List[T]{head: l.head, rest: r}
}
