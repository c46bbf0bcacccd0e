package engine

import "errors"

var (
	// ErrNotARepository indicates the current directory is not inside a
	// git repository. Benign: local and auto short-circuit on it without
	// touching anything.
	ErrNotARepository = errors.New("not in a git repository")

	// ErrProfileNotFound indicates the target profile key is absent from
	// the store, whether named explicitly or via a marker. Benign.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoMarker indicates no marker file was found in the repository.
	// Benign: auto is invoked on every directory change and must stay
	// silent-friendly when there is simply nothing to do.
	ErrNoMarker = errors.New("no .gswitch file found")

	// ErrProfileExists indicates an import would overwrite an existing
	// profile key.
	ErrProfileExists = errors.New("profile already exists")
)

// IsBenign reports whether err is an informational outcome rather than a
// failure. Benign conditions print a message and exit zero; hard failures
// (empty markers, config write failures, incomplete identities) propagate
// unchanged.
func IsBenign(err error) bool {
	return errors.Is(err, ErrNotARepository) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrNoMarker)
}
