// Command consolidate replays a bluesky document log and reports the
// consolidated shape, chunk grid and backing assets of every externally
// written stream in it.
//
// Usage:
//
//	consolidate [-v] [run.jsonl]
//
// Reads from stdin when no file is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bluesky-go/consolidate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "consolidate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "log per-stream progress")
	flag.Parse()

	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	r, err := consolidate.Replay(in)
	if err != nil {
		return err
	}

	for _, uid := range r.Streams() {
		cons, ok := r.Stream(uid)
		if !ok {
			log.Warn().Str("stream_resource", uid).Msg("resource declared but no stream datum arrived")
			continue
		}
		sum := cons.Summary()
		log.Info().
			Str("stream_resource", uid).
			Int("extent", cons.Extent()).
			Int("assets", len(cons.Assets())).
			Msg("stream consolidated")
		fmt.Printf("%s\n  shape:  %v\n  chunks: %v\n  assets: %d\n",
			uid, sum.Shape, sum.Chunks, len(cons.Assets()))
	}
	return nil
}
