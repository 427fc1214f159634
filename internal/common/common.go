package common

import (
	"reflect"
	"unsafe"
)

// ArrayLen reports the length of A when A is an array type whose element
// type is exactly T. Named array types such as `type Hash [32]byte` qualify.
func ArrayLen[A, T any]() (int, bool) {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		return 0, false
	}
	return at.Len(), true
}

// InBounds reports whether the window [offset, offset+size) fits in a
// sequence of n elements. It never overflows.
func InBounds(offset, size, n int) bool {
	return offset >= 0 && size <= n && offset <= n-size
}

// ArrayAt reinterprets src[offset:offset+size] as *A without copying.
// Shape and bounds must already be checked.
func ArrayAt[A, T any](src []T, offset, size int) *A {
	if size == 0 {
		// nothing to alias; zero-size allocations return the runtime's zero base
		return new(A)
	}
	return (*A)(unsafe.Pointer(&src[offset]))
}
