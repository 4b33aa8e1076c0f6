package common

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords read from the terminal once they have been handed over.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
