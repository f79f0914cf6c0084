package blockchain

import "github.com/pkg/errors"

var (
	// ErrPersist is the class of errors returned when an eager write of a block input failed.
	ErrPersist = errors.New("could not persist block inputs")
	// ErrPrune is the class of errors returned when data for unimported blocks could not be removed.
	ErrPrune = errors.New("could not prune unimported block inputs")

	errNilDatabase   = errors.New("nil database")
	errNilForkChoice = errors.New("nil fork choice gateway")
	errNilImporter   = errors.New("nil block importer")
)

// classifiedError ties a failure to one of the package's error classes while keeping the
// underlying cause reachable through errors.Is and errors.As.
type classifiedError struct {
	class error
	cause error
}

func classify(class, cause error) error {
	if cause == nil {
		return nil
	}
	return classifiedError{class: class, cause: cause}
}

func (e classifiedError) Error() string {
	return e.class.Error() + ": " + e.cause.Error()
}

// Is matches the error class.
func (e classifiedError) Is(target error) bool {
	return target == e.class
}

// Unwrap returns the underlying cause.
func (e classifiedError) Unwrap() error {
	return e.cause
}
