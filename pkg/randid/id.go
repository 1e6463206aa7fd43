// Package randid generates short random identifiers used to correlate log
// lines that belong to the same dialog instance.
package randid

import "math/rand/v2"

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of length n.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// Prefixed returns prefix, a dash, and n random characters.
func Prefixed(prefix string, n int) string {
	return prefix + "-" + Generate(n)
}
