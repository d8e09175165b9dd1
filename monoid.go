package writer

// Monoid is the capability a log type must provide.
//
// Empty returns the identity element and must not depend on the receiver:
// it is called on a witness value or on the zero value of L. Concat combines
// the receiver (left) with other (right) and must be associative:
//
//	a.Concat(b.Concat(c)) == a.Concat(b).Concat(c)
//	a.Concat(a.Empty()) == a.Empty().Concat(a) == a
type Monoid[L any] interface {
	Empty() L
	Concat(other L) L
}

// empty returns the identity element of L without a witness.
func empty[L Monoid[L]]() L {
	var zero L
	return zero.Empty()
}
