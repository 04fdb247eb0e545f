package pulse

import "unsafe"

// AsByteSlice views the memory of value as bytes, for uploading
// HostLayout structs into buffers.
func AsByteSlice[T any](value *T) []byte {
	ptr := (*byte)(unsafe.Pointer(value))
	return unsafe.Slice(ptr, unsafe.Sizeof(*value))
}
