package bisect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIntSeq_Expand(t *testing.T) {
	cases := []struct {
		in  string
		exp []int
	}{
		{"0", []int{0}},
		{"1_3-5_9", []int{1, 3, 4, 5, 9}},
		{"1-3_3-5", []int{1, 2, 3, 3, 4, 5}},
		{"2_2_2", []int{2, 2, 2}},
		{"7-7", []int{7}},
		{" 1 _ 2-4 ", []int{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		seq, err := ParseIntSeq(tc.in)
		if err != nil {
			t.Fatalf("ParseIntSeq(%q): %v", tc.in, err)
		}
		got := seq.Expand()
		if diff := cmp.Diff(tc.exp, got); diff != "" {
			t.Fatalf("ParseIntSeq(%q).Expand() mismatch (-want +got):\n%s", tc.in, diff)
		}
		if seq.Len() != len(got) {
			t.Fatalf("ParseIntSeq(%q).Len() = %d, want %d", tc.in, seq.Len(), len(got))
		}
		if !SortedBy(got, Compare[int]) {
			t.Fatalf("ParseIntSeq(%q) expanded to an unsorted sequence %v", tc.in, got)
		}
	}
}

func TestParseIntSeq_Errors(t *testing.T) {
	errCases := []string{
		"",
		"_",
		"1__3",
		"a",
		"1_x",
		"-3",
		"3-1",
		"3_1-4",
		"1_2_1",
		"5-4",
		"1-2-3",
		"0-2000000", // over MaxIntSeqLen
	}
	for _, in := range errCases {
		if _, err := ParseIntSeq(in); err == nil {
			t.Fatalf("ParseIntSeq(%q) should fail", in)
		}
	}
}

func TestIntSeq_String(t *testing.T) {
	cases := []struct {
		in  string
		exp string
	}{
		{"1", "1"},
		{"1_2_3", "1-3"},
		{"1-2_3-5_9", "1-5_9"},
		{"1-3_3-5", "1-3_3-5"}, // merging would drop the duplicate 3
		{"7-7", "7"},
	}

	for _, tc := range cases {
		seq, err := ParseIntSeq(tc.in)
		if err != nil {
			t.Fatalf("ParseIntSeq(%q): %v", tc.in, err)
		}
		if got := seq.String(); got != tc.exp {
			t.Fatalf("ParseIntSeq(%q).String() = %q, want %q", tc.in, got, tc.exp)
		}
		back, err := ParseIntSeq(seq.String())
		if err != nil {
			t.Fatalf("reparse %q: %v", seq.String(), err)
		}
		if diff := cmp.Diff(seq.Expand(), back.Expand()); diff != "" {
			t.Fatalf("String() of %q is not lossless (-orig +reparsed):\n%s", tc.in, diff)
		}
	}
}
