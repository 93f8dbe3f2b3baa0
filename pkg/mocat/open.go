package mocat

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open loads the .mo file at path via mmap and builds a ready-to-query
// Catalog. It is the only blocking operation in the package (spec.md §5):
// every other Catalog method is non-blocking and allocates nothing on the
// hot path.
func Open(path string, opts ...Option) (*Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgs)
	}

	o := resolveOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: opening %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}

	size := info.Size()
	if size < headerSize {
		return nil, fmt.Errorf("%w: %s shorter than header", ErrInvalidFormat, path)
	}

	buf, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrMemory, path, err)
	}

	cat, err := build(buf, true, o)
	if err != nil {
		_ = unix.Munmap(buf)

		return nil, err
	}

	return cat, nil
}

// OpenMemory builds a Catalog directly from an in-memory .mo byte slice.
// The Catalog takes ownership of data; the caller must not mutate it
// afterward.
func OpenMemory(data []byte, opts ...Option) (*Catalog, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil data", ErrInvalidArgs)
	}

	o := resolveOptions(opts)

	return build(data, false, o)
}
