package input

import "errors"

// ErrReleased is returned by Release when the buffer was already released.
var ErrReleased = errors.New("buffer already released")

// Buffer holds the contents of a loaded file followed by a single NUL byte.
// len(data) is always Len()+1 and data[Len()] is the terminator.
type Buffer struct {
	data   []byte
	n      int
	shrunk bool
}

// Bytes returns the file contents without the terminator.
func (b *Buffer) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.n:b.n]
}

// Terminated returns the file contents followed by the NUL terminator.
func (b *Buffer) Terminated() []byte {
	return b.data
}

// String returns the contents as a string, suitable for use as a template.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Len returns the number of bytes read from the file.
func (b *Buffer) Len() int { return b.n }

// Cap returns the allocated size, at least Len()+1.
func (b *Buffer) Cap() int { return cap(b.data) }

// Shrunk reports whether the allocation was trimmed to exactly Len()+1.
// A false result is not an error: the buffer is still valid, just oversized.
func (b *Buffer) Shrunk() bool { return b.shrunk }

// Release drops the buffer's memory. Only the first call succeeds.
func (b *Buffer) Release() error {
	if b.data == nil {
		return ErrReleased
	}
	b.data = nil
	b.n = 0
	return nil
}
