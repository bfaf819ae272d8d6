package extent

// Chunks splits data into count contiguous slices for independent workers.
// Each boundary starts at an equal-size cut point and is snapped forward to
// just past the next line terminator, so no record is ever split across two
// slices. When count exceeds the number of records the tail slices are empty.
// data must end with a line terminator.
func Chunks(data []byte, count int) [][]byte {
	chunks := make([][]byte, 0, count)
	size := len(data)
	chunkSize := size / count
	base := 0
	offset := chunkSize

	for i := 0; i < count; i++ {
		for offset < size && data[offset] != '\n' {
			offset++
		}
		end := offset + 1
		if end > size {
			end = size
		}
		chunks = append(chunks, data[base:end])
		base = end
		offset += min(chunkSize, size-base)
	}

	return chunks
}
