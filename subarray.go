package subarray

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rawbytedev/subarray/internal/common"
)

var (
	ErrOutOfRange = errors.New("subarray: window out of range")
	ErrNotArray   = errors.New("subarray: type argument is not an array of the source element type")
)

// RangeError describes a window [Offset, Offset+Size) that does not fit in
// a source of Len elements. It unwraps to ErrOutOfRange.
type RangeError struct {
	Offset int
	Size   int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("subarray: window [%d:%d] out of range for length %d", e.Offset, e.Offset+e.Size, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Ref returns a view of the len(A) elements of src starting at offset.
// A must be an array type whose element type is T, for example
//
//	head := subarray.Ref[[4]byte](buf[:], 0)
//
// The view aliases src. Callers must treat it as read-only; use Mut when the
// view is written through. Ref panics with a *RangeError when
// offset+len(A) exceeds len(src), mirroring array indexing.
func Ref[A, T any](src []T, offset int) *A {
	v, err := view[A](src, offset)
	if err != nil {
		panic(err)
	}
	return v
}

// Mut is Ref for views that will be written. Writes land in src immediately.
// While the returned view is in use no other reference to the overlapping
// elements of src should be used; Go does not enforce this.
func Mut[A, T any](src []T, offset int) *A {
	v, err := view[A](src, offset)
	if err != nil {
		panic(err)
	}
	return v
}

// TryRef is the fallible form of Ref. It reports a *RangeError or
// ErrNotArray instead of panicking.
func TryRef[A, T any](src []T, offset int) (*A, error) {
	return view[A](src, offset)
}

// TryMut is the fallible form of Mut.
func TryMut[A, T any](src []T, offset int) (*A, error) {
	return view[A](src, offset)
}

// Get returns a copy of the window instead of an aliased view. It has the
// same bounds contract as Ref.
func Get[A, T any](src []T, offset int) A {
	return *Ref[A](src, offset)
}

// Len reports the number of elements in the array type A.
func Len[A any]() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array {
		panic(fmt.Errorf("%w: %v", ErrNotArray, t))
	}
	return t.Len()
}

func view[A, T any](src []T, offset int) (*A, error) {
	size, ok := common.ArrayLen[A, T]()
	if !ok {
		return nil, fmt.Errorf("%w: %v from []%v", ErrNotArray, reflect.TypeFor[A](), reflect.TypeFor[T]())
	}
	if !common.InBounds(offset, size, len(src)) {
		return nil, &RangeError{Offset: offset, Size: size, Len: len(src)}
	}
	return common.ArrayAt[A](src, offset, size), nil
}
