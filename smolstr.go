// Package smolstr provides small immutable string types backed by fixed
// size tagged buffers.
//
// Str16 and Str24 occupy exactly 16 and 24 bytes. Content up to 15
// (respectively 23) bytes is stored inline with no allocation, longer
// content is reference counted on the heap, and strings backed by
// process-lifetime memory can be borrowed without copying at all.
// Cloning is O(1) for every variant and the types are immutable after
// construction.
//
// The byte-level cores live in pkg/buf16 and pkg/buf24 for callers that
// want the same representation without the UTF-8 surface.
package smolstr

import "unsafe"

// stringBytes aliases the content of s as a byte slice without copying.
// The result must not be mutated.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesString aliases b as a string without copying. The backing bytes
// must not change while the string is in use.
func bytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
