// Package result provides Result[T], a tagged success/failure value for
// call sites that want to carry either an outcome or an error message as
// one first-class value.
//
// Overview:
//
//   - A Result is exactly one of Ok(value) or Err(message), never both
//     and never neither. The zero value is Ok of T's zero value.
//   - Results are immutable once constructed; combinators like Map and
//     UnwrapOr produce new values, they never mutate in place.
//   - Err results short-circuit: Map never invokes its function on an Err,
//     it propagates the existing error untouched.
//
// When to use:
//
//   - Pipelines that thread a fallible value through several steps and
//     want to defer the error check to the end.
//   - APIs that hand results to queues, maps, or channels, where a single
//     value is easier to store than a (T, error) pair. From and Get bridge
//     both directions.
//
// Failure contract:
//
//   - Unwrap on an Err panics with an error wrapping ErrUnwrapOnErr and
//     the stored message. That is a caller logic error: check IsOk first,
//     or use UnwrapOr / UnwrapOrElse / Get, which never panic.
//
// Complexity: every operation is O(1).
package result
