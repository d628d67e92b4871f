// Package textx contains small text utilities used by the client.
package textx

// Reverse returns s with its runes in reverse order. Strings of length
// zero or one come back unchanged.
func Reverse(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return s
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
