package writer

// Unit is the result type of computations that only write to the log.
type Unit = struct{}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Writer is a deferred computation producing a value of type V and a log of
// type L. A Writer is immutable: every combinator returns a new Writer and
// leaves its inputs untouched.
//
// The zero Writer runs as (zero V, Empty()).
type Writer[V any, L Monoid[L]] struct {
	action func() (V, L)
}

// New wraps action as a Writer. A nil action behaves like the zero Writer.
func New[V any, L Monoid[L]](action func() (V, L)) Writer[V, L] {
	return Writer[V, L]{action: action}
}

// Of returns a Writer that yields value with an empty log. The witness only
// selects the monoid; its contents are ignored.
func Of[V any, L Monoid[L]](value V, witness L) Writer[V, L] {
	return New(func() (V, L) {
		return value, witness.Empty()
	})
}

// Tell returns a Writer that appends fragment to the log and yields Unit.
func Tell[L Monoid[L]](fragment L) Writer[Unit, L] {
	return New(func() (Unit, L) {
		return Unit{}, fragment
	})
}

// Run invokes the computation and returns its value and accumulated log.
// Each call runs the action again. Panics raised by functions passed to the
// combinators propagate out of Run.
func (w Writer[V, L]) Run() (V, L) {
	if w.action == nil {
		var v V
		return v, empty[L]()
	}
	return w.action()
}

// Value runs w and returns only its value.
func (w Writer[V, L]) Value() V {
	v, _ := w.Run()
	return v
}

// Log runs w and returns only its log.
func (w Writer[V, L]) Log() L {
	_, l := w.Run()
	return l
}

// Map transforms the value of w with f. The log is passed through unchanged.
func Map[V, W any, L Monoid[L]](w Writer[V, L], f func(V) W) Writer[W, L] {
	return New(func() (W, L) {
		v, l := w.Run()
		return f(v), l
	})
}

// Chain sequences w with the Writer produced by f (monadic bind).
//
// Logs are combined in execution order: the log of w is the receiver and the
// log of f's Writer the argument of Concat, so telling "A" and then "B" under
// a list monoid yields ["A", "B"].
func Chain[V, W any, L Monoid[L]](w Writer[V, L], f func(V) Writer[W, L]) Writer[W, L] {
	return New(func() (W, L) {
		v1, l1 := w.Run()
		v2, l2 := f(v1).Run()
		return v2, l1.Concat(l2)
	})
}

// Ap applies the function carried by wf to the value carried by arg.
// It is derived from Chain and Map; the log of wf precedes the log of arg.
func Ap[V, R any, L Monoid[L]](wf Writer[func(V) R, L], arg Writer[V, L]) Writer[R, L] {
	return Chain(wf, func(f func(V) R) Writer[R, L] {
		return Map(arg, f)
	})
}

// Then runs w, discards its value and continues with next.
func Then[V, W any, L Monoid[L]](w Writer[V, L], next Writer[W, L]) Writer[W, L] {
	return Chain(w, func(V) Writer[W, L] {
		return next
	})
}

// Listen exposes the log of w alongside its value. The log itself is kept.
func Listen[V any, L Monoid[L]](w Writer[V, L]) Writer[Pair[V, L], L] {
	return New(func() (Pair[V, L], L) {
		v, l := w.Run()
		return Pair[V, L]{Fst: v, Snd: l}, l
	})
}

// Censor rewrites the log of w with f.
func Censor[V any, L Monoid[L]](w Writer[V, L], f func(L) L) Writer[V, L] {
	return New(func() (V, L) {
		v, l := w.Run()
		return v, f(l)
	})
}

// Sequence runs ws in order, collecting their values. Logs are combined in
// the same order. No input yields an empty slice and an empty log.
func Sequence[V any, L Monoid[L]](ws ...Writer[V, L]) Writer[[]V, L] {
	acc := New(func() ([]V, L) {
		return make([]V, 0, len(ws)), empty[L]()
	})
	for _, w := range ws {
		acc = Chain(acc, func(vs []V) Writer[[]V, L] {
			return Map(w, func(v V) []V {
				out := make([]V, len(vs), len(vs)+1)
				copy(out, vs)
				return append(out, v)
			})
		})
	}
	return acc
}
