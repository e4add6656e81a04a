package decoder

import (
	"go.uber.org/zap"

	"numcore.dev/ncd/pkg/primitives"
)

// Tracer observes intermediate decoding steps. It is a pure side channel:
// the decoder produces identical output whichever tracer is installed.
// Tracers must be safe for concurrent use when combined with WithWorkers.
type Tracer interface {
	// OnWordRanks reports a word's rank sequence after filtering.
	OnWordRanks(word string, ranks []int)

	// OnGroup reports the outcome of the search for one group. ops and
	// value are only meaningful when ok is true.
	OnGroup(group primitives.Group, ops primitives.OpSeq, value int, ok bool)

	// OnWordDecoded reports a word's final decoded form.
	OnWordDecoded(word string, decoded *primitives.DecodedWord)
}

// NopTracer ignores every event.
type NopTracer struct{}

func (NopTracer) OnWordRanks(string, []int) {}

func (NopTracer) OnGroup(primitives.Group, primitives.OpSeq, int, bool) {}

func (NopTracer) OnWordDecoded(string, *primitives.DecodedWord) {}

// ZapTracer logs every decoding step through a zap logger.
type ZapTracer struct {
	Log *zap.Logger
}

func (t ZapTracer) OnWordRanks(word string, ranks []int) {
	t.Log.Debug("converted word to ranks",
		zap.String("word", word),
		zap.Ints("ranks", ranks))
}

func (t ZapTracer) OnGroup(group primitives.Group, ops primitives.OpSeq, value int, ok bool) {
	if !ok {
		t.Log.Debug("group has no numeric core", zap.Ints("group", group[:]))
		return
	}
	t.Log.Debug("found numeric core",
		zap.Ints("group", group[:]),
		zap.String("ops", ops.String()),
		zap.Int("core", value),
		zap.String("letter", string(primitives.LetterOf(value))))
}

func (t ZapTracer) OnWordDecoded(word string, decoded *primitives.DecodedWord) {
	t.Log.Debug("decoded word",
		zap.String("word", word),
		zap.String("decoded", decoded.String()))
}
