// Package cursor lays consecutive fixed-size views over a single buffer.
// Each Next hands out the window at the current offset and moves past it,
// which is how fixed-width record fields are usually written.
package cursor

import (
	"github.com/rawbytedev/subarray"
	"github.com/rawbytedev/subarray/internal/common"
)

// Cursor tracks a write position in buf.
type Cursor[T any] struct {
	buf []T
	off int
}

func New[T any](buf []T) *Cursor[T] {
	return &Cursor[T]{buf: buf}
}

func (c *Cursor[T]) Offset() int    { return c.off }
func (c *Cursor[T]) Len() int       { return len(c.buf) }
func (c *Cursor[T]) Remaining() int { return len(c.buf) - c.off }

// Seek moves the cursor to offset. The end of the buffer is a valid position.
func (c *Cursor[T]) Seek(offset int) error {
	if !common.InBounds(offset, 0, len(c.buf)) {
		return &subarray.RangeError{Offset: offset, Len: len(c.buf)}
	}
	c.off = offset
	return nil
}

// Skip advances the cursor by n elements without handing out a view.
func (c *Cursor[T]) Skip(n int) error {
	if n < 0 || !common.InBounds(c.off, n, len(c.buf)) {
		return &subarray.RangeError{Offset: c.off, Size: n, Len: len(c.buf)}
	}
	c.off += n
	return nil
}

func (c *Cursor[T]) Reset() { c.off = 0 }

// Peek returns the view at the current offset without advancing.
func Peek[A, T any](c *Cursor[T]) (*A, error) {
	return subarray.TryMut[A](c.buf, c.off)
}

// Next returns the view at the current offset and advances past it.
// On error the cursor does not move.
func Next[A, T any](c *Cursor[T]) (*A, error) {
	v, err := subarray.TryMut[A](c.buf, c.off)
	if err != nil {
		return nil, err
	}
	c.off += subarray.Len[A]()
	return v, nil
}

// MustNext is Next that panics when the view does not fit.
func MustNext[A, T any](c *Cursor[T]) *A {
	v, err := Next[A](c)
	if err != nil {
		panic(err)
	}
	return v
}
