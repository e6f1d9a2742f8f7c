package input

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

const (
	// DefaultInitialSize is the capacity a load starts with.
	DefaultInitialSize = 4096
	// DefaultChunkSize is the number of bytes requested per read.
	DefaultChunkSize = 2048
)

var (
	// ErrTooLarge is returned when growing the buffer would exceed Loader.MaxSize.
	ErrTooLarge = errors.New("file exceeds maximum buffer size")
	// ErrAlloc is returned when the runtime refuses a buffer allocation.
	ErrAlloc = errors.New("buffer allocation failed")
)

// Loader reads whole files into a growable buffer. Reads are issued in
// ChunkSize pieces and the capacity doubles whenever the remaining headroom
// drops to ChunkSize or less, so there is always room for the terminator.
type Loader struct {
	InitialSize int
	ChunkSize   int

	// MaxSize caps the capacity the buffer may grow to; 0 means no limit.
	// The initial allocation is always made, so files that fit in it load
	// even when MaxSize is smaller than InitialSize.
	MaxSize int

	// alloc is swapped out by tests to simulate allocation failures.
	alloc func(size int) ([]byte, error)
}

// NewLoader creates a Loader with the default sizes and no size limit.
func NewLoader() *Loader {
	return &Loader{
		InitialSize: DefaultInitialSize,
		ChunkSize:   DefaultChunkSize,
	}
}

// Read loads the file at path. The descriptor is closed before Read returns,
// whatever the outcome.
func (l *Loader) Read(path string) (*Buffer, error) {
	fd, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	buf, err := l.readAll(fd)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

func (l *Loader) readAll(fd int) (*Buffer, error) {
	chunk, size := l.sizes()

	data, err := l.allocate(size)
	if err != nil {
		return nil, err
	}

	total := 0
	for {
		n, err := unix.Read(fd, data[total:total+chunk])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break // EOF
		}
		total += n

		if len(data)-total <= chunk {
			next := len(data) * 2
			if l.MaxSize > 0 && next > l.MaxSize {
				return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, l.MaxSize)
			}
			grown, err := l.allocate(next)
			if err != nil {
				return nil, err
			}
			copy(grown, data[:total])
			data = grown
		}
	}

	// Headroom is always greater than chunk, so the terminator fits.
	data[total] = 0

	b := &Buffer{data: data[:total+1], n: total}
	if fitted, err := l.allocate(total + 1); err == nil {
		copy(fitted, b.data)
		b.data = fitted
		b.shrunk = true
	}
	return b, nil
}

// sizes returns the chunk and initial sizes, raising the initial size when it
// would not leave more than one chunk of headroom.
func (l *Loader) sizes() (chunk, initial int) {
	chunk = l.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	initial = l.InitialSize
	if initial <= 0 {
		initial = DefaultInitialSize
	}
	if initial <= chunk {
		initial = 2 * chunk
	}
	return chunk, initial
}

func (l *Loader) allocate(size int) ([]byte, error) {
	if l.alloc != nil {
		return l.alloc(size)
	}
	return makeSlice(size)
}

// makeSlice allocates size bytes, turning a runtime allocation panic into ErrAlloc.
func makeSlice(size int) (b []byte, err error) {
	defer func() {
		if recover() != nil {
			b, err = nil, fmt.Errorf("%w: %d bytes", ErrAlloc, size)
		}
	}()
	return make([]byte, size), nil
}

// openFile opens a file with O_NOATIME, falling back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err != nil {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
