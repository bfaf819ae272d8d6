package table

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// StringHash is FNV-1a over the bytes of s. Not resistant to adversarial
// keys; the container's callers feed it trusted input.
func StringHash(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}
