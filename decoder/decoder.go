// Package decoder turns words and lines of ciphertext into their decoded
// form by computing the numeric core of every group of four letters.
package decoder

import (
	"strings"

	"numcore.dev/ncd/pkg/primitives"
)

// Decoder decodes words and lines. Create one with CreateDecoder; the
// zero value has no tracer installed and must not be used.
type Decoder struct {
	tracer  Tracer
	workers int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithTracer installs an observer for intermediate decoding steps.
func WithTracer(t Tracer) Option {
	return func(d *Decoder) {
		d.tracer = t
	}
}

// WithWorkers bounds the number of lines decoded in parallel by
// DecodedLines. Values below one fall back to serial decoding.
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		d.workers = n
	}
}

// CreateDecoder creates a decoder with the given options applied.
func CreateDecoder(opts ...Option) *Decoder {
	d := &Decoder{tracer: NopTracer{}, workers: 1}
	for _, opt := range opts {
		opt(d)
	}
	if d.workers < 1 {
		d.workers = 1
	}
	return d
}

// DecodeWord converts the word's letters to ranks, partitions them into
// groups of four (dropping a trailing remainder), and decodes one letter
// per group. Groups with no numeric core decode to the placeholder; a
// word with fewer than four letters decodes to nothing.
func (d *Decoder) DecodeWord(word string) primitives.DecodedWord {
	ranks := primitives.Ranks(word)
	d.tracer.OnWordRanks(word, ranks)

	groups := primitives.GroupsOf(ranks)
	decoded := primitives.DecodedWord{
		Letters: make([]rune, 0, len(groups)),
		Groups:  groups,
	}
	for _, g := range groups {
		value, ops, ok := g.Core()
		d.tracer.OnGroup(g, ops, value, ok)
		if ok {
			decoded.Letters = append(decoded.Letters, primitives.LetterOf(value))
		} else {
			decoded.Letters = append(decoded.Letters, primitives.Placeholder)
		}
	}

	d.tracer.OnWordDecoded(word, &decoded)
	return decoded
}

// DecodeLine decodes every whitespace-separated word on the line and
// concatenates the results with no separator between words.
func (d *Decoder) DecodeLine(line string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(line) {
		decoded := d.DecodeWord(word)
		sb.WriteString(decoded.String())
	}
	return sb.String()
}
