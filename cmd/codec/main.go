// Command codec compresses and decompresses files with the registered
// entropy coders.
//
// Usage:
//
//	codec --algorithm {arith|huffman} {--encode|--decode} <infile> <outfile>
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cocosip/go-entropy-codec/codec"
	"github.com/cocosip/go-entropy-codec/console"

	// Register all codecs by importing them
	_ "github.com/cocosip/go-entropy-codec/arith"
	_ "github.com/cocosip/go-entropy-codec/huffman"
)

func printUsage() {
	fmt.Println("usage:  codec --algorithm <name> [option] infile outfile")
	fmt.Println("algorithms:")
	for _, c := range codec.List() {
		fmt.Printf("  %s\n", c.Name())
	}
	fmt.Println("options:")
	fmt.Println("--encode  encode infile to outfile")
	fmt.Println("--decode  decode infile to outfile")
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	args := os.Args
	if len(args) != 6 || args[1] != "--algorithm" {
		printUsage()
		return
	}
	if args[3] != "--encode" && args[3] != "--decode" {
		printUsage()
		return
	}

	algorithm, mode, infile, outfile := args[2], args[3], args[4], args[5]

	var err error
	if mode == "--encode" {
		err = codec.EncodeFile(algorithm, infile, outfile, console.NewProgress())
	} else {
		err = codec.DecodeFile(algorithm, infile, outfile, console.NewProgress())
	}
	if err != nil {
		log.Error().Err(err).Msg("codec failed")
		os.Exit(1)
	}
}
