package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"numcore.dev/ncd"
	"numcore.dev/ncd/decoder"
)

func main() {

	loadLinesFromCloud := flag.Bool("cloud", false, "Load ciphertext lines from cloud instead of a file")
	scope := flag.String("scope", "regular", "The scope of the lines to load")
	workers := flag.Int("workers", 1, "Number of lines to decode in parallel")
	verbose := flag.Bool("verbose", false, "Log every intermediate decoding step")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for decoding")

	flag.Parse()

	if *loadLinesFromCloud && flag.NArg() > 0 {
		fmt.Println("Cannot use both -cloud and an input file")
		os.Exit(1)
	}

	opts := []decoder.Option{decoder.WithWorkers(*workers)}
	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Println("Error creating logger:", err)
			os.Exit(1)
		}
		defer log.Sync()
		opts = append(opts, decoder.WithTracer(decoder.ZapTracer{Log: log}))
	}
	d := decoder.CreateDecoder(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		errc <- feedLines(ctx, lines, *loadLinesFromCloud, *scope)
	}()

	for decoded := range d.DecodedLines(ctx, lines) {
		fmt.Println(decoded)
	}

	if err := <-errc; err != nil {
		fmt.Println("Error reading input:", err)
		os.Exit(1)
	}

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}

func feedLines(ctx context.Context, lines chan<- string, fromCloud bool, scope string) error {
	if fromCloud {
		fmt.Println("Loading lines from cloud...")
		cloudLines, err := ncd.LoadLinesFromCloud(ctx, scope)
		if err != nil {
			return err
		}
		fmt.Println("Loaded lines:", len(cloudLines))
		for _, line := range cloudLines {
			select {
			case lines <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}
