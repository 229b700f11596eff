package bisect

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxIntSeqLen bounds the number of elements an IntSeq may expand to.
const MaxIntSeqLen = 1 << 20

// IntRun is an inclusive run of consecutive integers [Lo, Hi].
type IntRun struct {
	Lo int
	Hi int
}

// IntSeq is a compact literal for a sorted integer sequence, kept as runs.
// Expanding the runs in order yields the sequence itself; the parser's
// non-decreasing constraint is what guarantees sortedness.
type IntSeq struct {
	Runs []IntRun
}

// ParseIntSeq parses the string v and returns an IntSeq or an error.
//
// Syntax (tokens are separated by underscore '_' characters):
//
//	"N"      -> the single natural number N
//	"N-M"    -> every integer of the closed interval [N, M]
//
// Example: "1_3-5_9" denotes the sequence 1 3 4 5 9.
//
// Constraint: all numeric values encountered during parsing must be
// non-decreasing (they may be equal) when read left to right, so the
// expanded sequence is sorted by construction. "1-3_3_9" is valid and
// yields a duplicate 3; "3_1-4" is invalid. The expanded length must not
// exceed MaxIntSeqLen.
func ParseIntSeq(v string) (IntSeq, error) {
	var seq IntSeq
	v = strings.TrimSpace(v)
	if v == "" {
		return IntSeq{}, fmt.Errorf("empty sequence literal")
	}

	tokens := strings.Split(v, "_")
	prev := 0
	total := 0
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return IntSeq{}, fmt.Errorf("empty token at position %d", i)
		}

		var run IntRun
		if sep := strings.Index(tok, "-"); sep != -1 {
			left := tok[:sep]
			right := tok[sep+1:]
			n1, err := parseNaturalNumber(left)
			if err != nil {
				return IntSeq{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseNaturalNumber(right)
			if err != nil {
				return IntSeq{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return IntSeq{}, fmt.Errorf("invalid run %q: min > max", tok)
			}
			run = IntRun{Lo: n1, Hi: n2}
		} else {
			n, err := parseNaturalNumber(tok)
			if err != nil {
				return IntSeq{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			run = IntRun{Lo: n, Hi: n}
		}

		if run.Lo < prev {
			return IntSeq{}, fmt.Errorf("numbers must be non-decreasing: %d < %d", run.Lo, prev)
		}
		total += run.Hi - run.Lo + 1
		if total > MaxIntSeqLen {
			return IntSeq{}, fmt.Errorf("sequence longer than %d elements", MaxIntSeqLen)
		}
		seq.Runs = append(seq.Runs, run)
		prev = run.Hi
	}

	return seq, nil
}

// parseNaturalNumber parses s as a natural number and returns that value or an error.
// It returns an error if s is not a valid natural number representation.
func parseNaturalNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return n, nil
}

// Len returns the number of elements the sequence expands to.
func (s IntSeq) Len() int {
	n := 0
	for _, r := range s.Runs {
		n += r.Hi - r.Lo + 1
	}
	return n
}

// Expand materializes the sequence. The result is sorted in non-decreasing
// order; duplicates occur where adjacent runs share a boundary value.
func (s IntSeq) Expand() []int {
	out := make([]int, 0, s.Len())
	for _, r := range s.Runs {
		for n := r.Lo; n <= r.Hi; n++ {
			out = append(out, n)
		}
	}
	return out
}

// String renders a canonical literal that ParseIntSeq parses back to the
// same sequence. Runs that continue exactly where the previous one ended
// are merged; runs sharing a boundary value are kept apart since merging
// would drop the duplicate.
func (s IntSeq) String() string {
	if len(s.Runs) == 0 {
		return ""
	}
	merged := make([]IntRun, 0, len(s.Runs))
	for _, r := range s.Runs {
		if len(merged) > 0 && merged[len(merged)-1].Hi+1 == r.Lo {
			merged[len(merged)-1].Hi = r.Hi
			continue
		}
		merged = append(merged, r)
	}
	var parts []string
	for _, r := range merged {
		if r.Lo == r.Hi {
			parts = append(parts, strconv.Itoa(r.Lo))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Lo, r.Hi))
		}
	}
	return strings.Join(parts, "_")
}
