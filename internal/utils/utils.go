package utils

import (
	"reflect"
	"unsafe"
)

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CopyBytes - Returns an owned copy of b, never aliasing the caller's memory
func CopyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	_ = copy(c, b)
	return c
}

// ValueBytes - Returns a view of the raw memory of the value val points to.
// The view aliases val, so it must be copied before val goes away or changes.
func ValueBytes[T any](val *T) []byte {
	size := int(unsafe.Sizeof(*val))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), size)
}

// StringBytes - Returns a read only view of the content bytes of s
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// SizeOf - Returns the in-memory size of a T
func SizeOf[T any]() int64 {
	var t T
	return int64(unsafe.Sizeof(t))
}

// IsFixedSize - Returns true if values of type t are self contained, i.e. hold no pointers, so that their raw
// memory fully represents them
func IsFixedSize(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return IsFixedSize(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsFixedSize(t.Field(i).Type) {
				return false
			}
		}
		return true
	}

	return false
}
