// Package text holds small, dependency-free string helpers shared by the
// extraction and classification stages.
package text

// CountRunes counts Unicode characters rather than bytes, so a length check
// against multi-byte-script content (Hindi, Tamil, Urdu, and the rest of
// the Indian-language sources the registry curates) isn't skewed by UTF-8
// encoding width the way len(s) would be.
func CountRunes(s string) int {
	return len([]rune(s))
}
