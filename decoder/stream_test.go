package decoder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDecodedLinesMatchesSerialDecoding(t *testing.T) {
	inputs := make([]string, 200)
	for i := range inputs {
		// Vary the decoded length per line so a reordering would show up
		// in the comparison below.
		inputs[i] = "DBAA " + strings.Repeat("ABCD ", i%7) + "BACD"
	}

	serial := CreateDecoder()
	want := make([]string, len(inputs))
	for i, line := range inputs {
		want[i] = serial.DecodeLine(line)
	}

	for _, workers := range []int{1, 4, 16} {
		d := CreateDecoder(WithWorkers(workers))

		lines := make(chan string)
		go func() {
			defer close(lines)
			for _, line := range inputs {
				lines <- line
			}
		}()

		var got []string
		for decoded := range d.DecodedLines(context.Background(), lines) {
			got = append(got, decoded)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("DecodedLines with %d workers mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestDecodedLinesStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := CreateDecoder(WithWorkers(2))

	lines := make(chan string)
	go func() {
		for {
			select {
			case lines <- "DBAA":
			case <-ctx.Done():
				return
			}
		}
	}()

	out := d.DecodedLines(ctx, lines)
	for range 3 {
		select {
		case decoded := <-out:
			if decoded != "A" {
				t.Fatalf("decoded line = %q, want \"A\"", decoded)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for a decoded line")
		}
	}

	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("output channel did not close after cancellation")
		}
	}
}
