package primitives

// Placeholder is emitted for a group that has no numeric core.
const Placeholder = '?'

// DecodedWord holds the output letters for a single source word, one per
// complete group of four ranks.
type DecodedWord struct {
	Letters []rune
	Groups  []Group
}

// Length returns the number of decoded letters.
func (w *DecodedWord) Length() int {
	return len(w.Letters)
}

func (w *DecodedWord) String() string {
	return string(w.Letters)
}
