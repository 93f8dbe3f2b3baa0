package mocat

import "errors"

// Error classification sentinels.
//
// Open and OpenMemory wrap these with additional context via fmt.Errorf's
// %w verb; callers MUST classify with errors.Is, never string matching.
var (
	// ErrInvalidArgs indicates a null or obviously malformed parameter.
	ErrInvalidArgs = errors.New("mocat: invalid arguments")

	// ErrFileNotFound indicates the catalog path could not be opened.
	ErrFileNotFound = errors.New("mocat: file not found")

	// ErrIO indicates a read returned fewer bytes than requested.
	ErrIO = errors.New("mocat: io error")

	// ErrInvalidFormat indicates a bad magic, or an offset/length escaping
	// the buffer.
	ErrInvalidFormat = errors.New("mocat: invalid format")

	// ErrMemory indicates an internal allocation failed.
	ErrMemory = errors.New("mocat: allocation failed")
)

// ErrorString returns a stable human-readable mapping for an error kind,
// matching the closest classification sentinel above. Unrecognized errors
// return their own Error() text.
func ErrorString(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgs):
		return "invalid arguments"
	case errors.Is(err, ErrFileNotFound):
		return "file not found"
	case errors.Is(err, ErrIO):
		return "io error"
	case errors.Is(err, ErrInvalidFormat):
		return "invalid format"
	case errors.Is(err, ErrMemory):
		return "allocation failed"
	default:
		return err.Error()
	}
}
