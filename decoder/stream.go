package decoder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type numbered struct {
	seq  int
	text string
}

// DecodedLines decodes every line received on lines and delivers the
// results on the returned channel in input order, decoding up to the
// configured number of lines in parallel. The returned channel closes
// once lines is closed and drained, or once ctx is done.
func (d *Decoder) DecodedLines(ctx context.Context, lines <-chan string) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		jobs := make(chan numbered)
		results := make(chan numbered)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			defer close(jobs)
			seq := 0
			for {
				select {
				case line, ok := <-lines:
					if !ok {
						return nil
					}
					select {
					case jobs <- numbered{seq: seq, text: line}:
						seq++
					case <-gctx.Done():
						return gctx.Err()
					}
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		})

		for range d.workers {
			g.Go(func() error {
				for job := range jobs {
					decoded := d.DecodeLine(job.text)
					select {
					case results <- numbered{seq: job.seq, text: decoded}:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				return nil
			})
		}

		go func() {
			g.Wait()
			close(results)
		}()

		// Re-sequence: lines leave in the order they arrived, regardless
		// of which worker finished first.
		pending := make(map[int]string)
		next := 0
		for res := range results {
			pending[res.seq] = res.text
			for {
				text, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				select {
				case out <- text:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
