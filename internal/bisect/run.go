package bisect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const SearchShortDesc = "Locate a target value in a pre-sorted sequence"

const SearchLongDesc = `Search runs a comparator-driven interval-halving search over a sequence
that the caller guarantees to be sorted, and prints the index of a matching
element. Values come from positional arguments, from stdin when the only
argument is "-", or from a compact --seq literal. When several elements are
order-equivalent to the target, any one of their indices may be printed.
Absence is a normal outcome: the command prints nothing and exits with
status 1.

The sequence is never validated unless --check is given; searching an
unsorted sequence yields an unspecified index or a miss, not an error.`

// EnvOpts is the environment variable holding default search flags.
// Flags given on the command line win over it.
const EnvOpts = "BISECT_OPTS"

// ErrNotFound reports that no element matched the target. The CLI maps it
// to exit status 1 with no error output.
var ErrNotFound = errors.New("target not found")

// SearchOptions collects the effective settings of a search invocation.
type SearchOptions struct {
	Type    ElemType
	Formats []string
	Seq     string
	Target  string
	Check   bool
	Trace   bool
	Quiet   bool
}

// RunSearch is the command logic behind "bisect search".
func RunSearch(cmd *cobra.Command, args []string) error {
	opts, err := collectSearchOptions(cmd)
	if err != nil {
		return err
	}

	if opts.Seq != "" {
		if len(args) > 0 {
			return fmt.Errorf("--seq cannot be combined with positional values")
		}
		if opts.Type != TypeInt {
			return fmt.Errorf("--seq implies --type int, got %s", opts.Type)
		}
		is, err := ParseIntSeq(opts.Seq)
		if err != nil {
			return fmt.Errorf("invalid --seq: %w", err)
		}
		return searchSeq(cmd, opts, is.Expand(), strconv.Atoi)
	}

	raw, err := gatherRaw(cmd, opts, args)
	if err != nil {
		return err
	}
	switch opts.Type {
	case TypeFloat:
		return searchRaw(cmd, opts, raw, parseFloatElem)
	case TypeString:
		return searchRaw(cmd, opts, raw, parseStringElem)
	default:
		return searchRaw(cmd, opts, raw, strconv.Atoi)
	}
}

func parseFloatElem(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func parseStringElem(s string) (string, error) { return s, nil }

func searchRaw[T Ordered](cmd *cobra.Command, opts *SearchOptions, raw []string, parse func(string) (T, error)) error {
	seq := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := parse(r)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", opts.Type, r, err)
		}
		seq = append(seq, v)
	}
	return searchSeq(cmd, opts, seq, parse)
}

func searchSeq[T Ordered](cmd *cobra.Command, opts *SearchOptions, seq []T, parse func(string) (T, error)) error {
	target, err := parse(opts.Target)
	if err != nil {
		return fmt.Errorf("invalid %s target %q: %w", opts.Type, opts.Target, err)
	}
	if opts.Check && !SortedBy(seq, Compare[T]) {
		return fmt.Errorf("sequence is not sorted by %s order", opts.Type)
	}
	cmp := Compare[T]
	if opts.Trace {
		cmp = traceCompare(cmd.ErrOrStderr(), cmp)
	}
	idx := Search(seq, target, cmp)
	if idx == NotFound {
		return ErrNotFound
	}
	if !opts.Quiet {
		cmd.Println(idx)
	}
	return nil
}

// traceCompare wraps cmp to log every probe, so callers observe the search
// purely through the comparator they supply.
func traceCompare[T any](w io.Writer, cmp CompareFunc[T]) CompareFunc[T] {
	probes := 0
	return func(a, b T) Ordering {
		probes++
		ord := cmp(a, b)
		fmt.Fprintf(w, "probe %d: %v vs %v = %s\n", probes, a, b, ord)
		return ord
	}
}

func gatherRaw(cmd *cobra.Command, opts *SearchOptions, args []string) ([]string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(opts.Formats) == 0 {
			return strings.Fields(string(data)), nil
		}
		return ParseValues(opts.Formats, []string{string(data)})
	}
	return ParseValues(opts.Formats, args)
}

func envFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("env-opts", pflag.ContinueOnError)
	fs.ParseErrorsAllowlist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.String("type", "", "")
	fs.StringSlice("format", nil, "")
	fs.Bool("check", false, "")
	fs.Bool("trace", false, "")
	fs.Bool("quiet", false, "")
	return fs
}

func collectSearchOptions(cmd *cobra.Command) (*SearchOptions, error) {
	env := envFlagSet()
	if raw := strings.TrimSpace(os.Getenv(EnvOpts)); raw != "" {
		if err := env.Parse(strings.Fields(raw)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvOpts, err)
		}
	}

	stringOpt := func(name string) (string, error) {
		if !cmd.Flags().Changed(name) && env.Changed(name) {
			return env.GetString(name)
		}
		return cmd.Flags().GetString(name)
	}
	sliceOpt := func(name string) ([]string, error) {
		if !cmd.Flags().Changed(name) && env.Changed(name) {
			return env.GetStringSlice(name)
		}
		return cmd.Flags().GetStringSlice(name)
	}
	boolOpt := func(name string) (bool, error) {
		if !cmd.Flags().Changed(name) && env.Changed(name) {
			return env.GetBool(name)
		}
		return cmd.Flags().GetBool(name)
	}

	opts := &SearchOptions{}
	typeName, err := stringOpt("type")
	if err != nil {
		return nil, err
	}
	elemType, err := ElemTypeString(typeName)
	if err != nil {
		return nil, fmt.Errorf("invalid --type: %w", err)
	}
	opts.Type = elemType

	formats, err := sliceOpt("format")
	if err != nil {
		return nil, err
	}
	if err := CheckFormats(formats); err != nil {
		return nil, err
	}
	opts.Formats = formats

	// data-carrying flags come from the command line only
	if opts.Seq, err = cmd.Flags().GetString("seq"); err != nil {
		return nil, err
	}
	if opts.Target, err = cmd.Flags().GetString("target"); err != nil {
		return nil, err
	}

	if opts.Check, err = boolOpt("check"); err != nil {
		return nil, err
	}
	if opts.Trace, err = boolOpt("trace"); err != nil {
		return nil, err
	}
	if opts.Quiet, err = boolOpt("quiet"); err != nil {
		return nil, err
	}
	return opts, nil
}
