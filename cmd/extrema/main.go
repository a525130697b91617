// Command extrema streams numbers through the lvlds ordered-extremum
// containers: it reports the running minimum or maximum after every push,
// optionally unwinds part of the stack, and prints the heap drain order.
//
//	extrema --order desc 5 3 8 1
//	seq 1 100 | shuf | extrema --unwind 10
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("extrema failed")
	}
}
