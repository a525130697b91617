package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/lvlds/heap"
	"github.com/katalvlaran/lvlds/minmax"
	"github.com/katalvlaran/lvlds/order"
)

var (
	errBadOrder = errors.New("extrema: --order must be asc or desc")
	errNaN      = errors.New("extrema: NaN has no place in an ordering")
)

// config is the parsed command line.
type config struct {
	dir     order.Direction
	unwind  int
	verbose bool
	values  []float64
}

// parseArgs reads flags from args and numbers from the positional arguments,
// or from stdin when there are none.
func parseArgs(args []string, stdin io.Reader) (config, error) {
	fs := pflag.NewFlagSet("extrema", pflag.ContinueOnError)
	direction := fs.String("order", "asc", "extremum to track: asc (minimum) or desc (maximum)")
	unwind := fs.Int("unwind", 0, "number of values to pop back off the stack after reading")
	verbose := fs.BoolP("verbose", "v", false, "log every container operation")

	if err := fs.Parse(args); err != nil {
		return config{}, errgo.Wrap(err, "failed to parse flags")
	}

	cfg := config{unwind: *unwind, verbose: *verbose}
	switch strings.ToLower(*direction) {
	case "asc", "min":
		cfg.dir = order.Ascending
	case "desc", "max":
		cfg.dir = order.Descending
	default:
		return config{}, fmt.Errorf("%w: got %q", errBadOrder, *direction)
	}
	if cfg.unwind < 0 {
		return config{}, fmt.Errorf("extrema: --unwind must be ≥ 0, got %d", cfg.unwind)
	}

	fields := fs.Args()
	if len(fields) == 0 && stdin != nil {
		sc := bufio.NewScanner(stdin)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			fields = append(fields, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return config{}, errgo.Wrap(err, "failed to read stdin")
		}
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return config{}, errgo.Wrap(err, fmt.Sprintf("invalid number %q", f))
		}
		if math.IsNaN(v) {
			return config{}, errgo.Wrap(errNaN, fmt.Sprintf("invalid number %q", f))
		}
		cfg.values = append(cfg.values, v)
	}

	return cfg, nil
}

// run executes the command and writes its report to out.
func run(args []string, stdin io.Reader, out io.Writer) error {
	cfg, err := parseArgs(args, stdin)
	if err != nil {
		return err
	}

	logger := log.Logger.Level(zerolog.InfoLevel)
	if cfg.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
	logger.Debug().Str("order", cfg.dir.String()).Int("values", len(cfg.values)).Int("unwind", cfg.unwind).Msg("starting")

	label := lo.Ternary(cfg.dir == order.Ascending, "min", "max")
	key := order.Identity[float64]()
	tracker := minmax.New(cfg.dir, key)
	h := heap.New(cfg.dir, key)

	for _, v := range cfg.values {
		tracker.Push(v)
		h.Push(v)
		ext, _ := tracker.Extremum()
		logger.Debug().Float64("value", v).Float64(label, ext).Int("occurrences", tracker.Occurrences()).Msg("push")
		fmt.Fprintf(out, "push %s  %s=%s x%d\n", format(v), label, format(ext), tracker.Occurrences())
	}

	for i := 0; i < cfg.unwind; i++ {
		v, ok := tracker.Pop()
		if !ok {
			logger.Debug().Int("requested", cfg.unwind).Int("popped", i).Msg("stack exhausted")
			break
		}
		ext, ok := tracker.Extremum()
		if !ok {
			fmt.Fprintf(out, "pop  %s  %s=none\n", format(v), label)
			continue
		}
		fmt.Fprintf(out, "pop  %s  %s=%s x%d\n", format(v), label, format(ext), tracker.Occurrences())
	}

	drained := make([]float64, 0, h.Len())
	for v, ok := h.Pop(); ok; v, ok = h.Pop() {
		drained = append(drained, v)
	}
	fmt.Fprintf(out, "sorted %s\n", strings.Join(lo.Map(drained, func(v float64, _ int) string {
		return format(v)
	}), " "))

	return nil
}

// format prints integral values without a fractional part.
func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
