// Package subarray extracts fixed-size sub-array views out of arrays without
// copying.
//
// Go has no const generics, so the view length comes from the first type
// argument and the source is passed as a slice of the array:
//
//	arr := [7]int{1, 2, 3, 4, 5, 6, 7}
//	sub := subarray.Ref[[3]int](arr[:], 1) // *[3]int{2, 3, 4}
//
// Views alias the source. A write through a view returned by Mut is a write
// to the source array, and the reverse holds as well. Out-of-range windows
// panic like array indexing does; TryRef and TryMut return the error
// instead. Package cursor lays consecutive views over one buffer.
package subarray
