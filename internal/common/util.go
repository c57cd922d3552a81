// Package common holds small helpers shared across client layers.
package common

// WipeByteArray overwrites b with zeros. Used to scrub passwords from memory
// as soon as they have been consumed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
