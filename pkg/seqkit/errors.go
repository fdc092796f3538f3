package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidArgument is returned when a required sequence, function or comparer is missing,
	// or when a count argument is out of its domain.
	ErrInvalidArgument errorkit.Error = "seqkit: invalid argument"
	// ErrEmptySequence is returned when an operation requires at least one element but the sequence had none.
	ErrEmptySequence errorkit.Error = "seqkit: sequence contains no elements"
	// ErrNoMatch is returned when the sequence had elements, but none of them satisfied the predicate.
	ErrNoMatch errorkit.Error = "seqkit: sequence contains no matching element"
	// ErrMultipleMatches is returned when exactly one element was expected, but more were found.
	ErrMultipleMatches errorkit.Error = "seqkit: sequence contains more than one matching element"
	// ErrDuplicateKey is returned by ToMap when two elements map to the same key.
	ErrDuplicateKey errorkit.Error = "seqkit: duplicate key"
	// ErrIndexOutOfRange is returned by ElementAt when the sequence is shorter than the index.
	ErrIndexOutOfRange errorkit.Error = "seqkit: index out of range"
	// ErrAlreadyIterated is the fault of a single use sequence that is iterated for the second time.
	ErrAlreadyIterated errorkit.Error = "seqkit: single use sequence is already iterated"
)

// Break can be returned from a ForEach function to stop the iteration without an error.
const Break errorkit.Error = "seqkit: break"

func errNilArg(name string) error {
	return ErrInvalidArgument.F("%s is nil", name)
}

func errNegativeCount(name string, n int) error {
	return ErrInvalidArgument.F("%s must not be negative: %d", name, n)
}
