// Package writer provides a generic Writer computation for Go.
//
// A Writer pairs a deferred result with a log. Logs are combined by a
// caller-supplied Monoid, so the package does not care whether the log is a
// list of lines, a running total or a set of touched IDs.
//
// # Quick Start
//
//	type Lines []string
//
//	func (Lines) Empty() Lines               { return nil }
//	func (l Lines) Concat(o Lines) Lines     { return append(append(Lines{}, l...), o...) }
//
//	halve := func(n int) writer.Writer[int, Lines] {
//	    return writer.Map(writer.Tell(Lines{"Halving the number"}), func(writer.Unit) int {
//	        return n / 2
//	    })
//	}
//
//	v, log := writer.Chain(halve(16), halve).Run() // 4, [Halving the number Halving the number]
//
// # Log Order
//
// Chain combines logs in execution order: the earlier log is the receiver of
// Concat and the later log its argument. Ap, Then and Sequence are built on
// Chain and inherit the same order.
//
// # Laws
//
// For a lawful Monoid the combinators satisfy, observed through Run:
//
//   - Map(w, id) ~ w
//   - Map(Map(w, f), g) ~ Map(w, g∘f)
//   - Chain(Of(x, m), f) ~ f(x)
//   - Chain(w, func(x) { return Of(x, m) }) ~ w
//   - Chain(Chain(w, f), g) ~ Chain(w, func(x) { return Chain(f(x), g) })
//
// # Concurrency
//
// Writers hold no mutable state. A Writer may be run from several goroutines
// at once as long as the functions and monoid it was built from are safe to
// do so.
//
// # Observability
//
// Instrument wraps a Writer so every Run is reported to a Logger and a
// MetricsCollector. TryRun recovers panics from caller functions into a
// *PanicError; Run lets them propagate.
package writer
