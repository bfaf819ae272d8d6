package core

import (
	"bytes"
	"unsafe"
)

// Aggregate runs one worker pass: it scans chunk record by record, upserting
// each observation into a freshly allocated summary, and returns the summary
// once the chunk is exhausted. chunk must end on a record boundary. Pure and
// single-threaded; the caller decides how many of these run concurrently.
func Aggregate(chunk []byte) *Summary {
	s := NewSummary()
	cursor := chunk

	for {
		sep := bytes.IndexByte(cursor, ';')
		if sep < 0 {
			return s
		}
		key := keyString(cursor[:sep])
		value, rest := ParseValue(cursor[sep+1:])
		s.data.Emplace(key).Add(value)
		cursor = rest
	}
}

// keyString aliases the key bytes as a string without copying. The bytes come
// straight from the read-only mapped extent and outlive the summary, so the
// table's stored keys stay valid for the whole run.
func keyString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
