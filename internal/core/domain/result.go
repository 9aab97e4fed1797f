package domain

// Source tags where a service result came from, so callers and tests can
// distinguish a genuine remote success from a masked failure without the
// service ever hard-failing a read.
type Source string

const (
	// SourceRemote marks data returned by the hosted backend.
	SourceRemote Source = "remote"
	// SourceFallback marks data substituted from the bundled local documents
	// or synthesized in memory after a remote failure.
	SourceFallback Source = "fallback"
)

// Result wraps entity data with its provenance. Cause is non-nil only when
// Source is SourceFallback and records the remote error that was masked.
type Result[T any] struct {
	Data   T
	Source Source
	Cause  error
}

// Remote wraps data returned by the hosted backend.
func Remote[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceRemote}
}

// Degraded wraps substituted data together with the remote error it masks.
func Degraded[T any](data T, cause error) Result[T] {
	return Result[T]{Data: data, Source: SourceFallback, Cause: cause}
}

// FromFallback reports whether the result was served from local data.
func (r Result[T]) FromFallback() bool {
	return r.Source == SourceFallback
}
