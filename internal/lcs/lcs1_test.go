package lcs

import (
	"testing"

	"github.com/vardesc/vardesc/internal/sequence"
)

const mask = sequence.DefaultMask

func TestLCS1Forward(t *testing.T) {
	reference := []byte("GGGACGTGGG")
	sample := []byte("TTACGTTT")

	hits, length := LCS1(reference, nil, 0, len(reference), sample, 0, len(sample), mask)
	if length != 4 {
		t.Fatalf("length = %d, want 4", length)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1: %+v", len(hits), hits)
	}
	h := hits[0]
	if h.ReferenceIndex != 3 || h.SampleIndex != 2 || h.Length != 4 || h.ReverseComplement {
		t.Errorf("hit = %+v, want {3 2 4 false}", h)
	}
}

func TestLCS1Ties(t *testing.T) {
	// ACG occurs twice in the reference; both positions must be
	// reported at the maximum length.
	reference := []byte("ACGTTACGT")
	sample := []byte("CCACGCC")

	hits, length := LCS1(reference, nil, 0, len(reference), sample, 0, len(sample), mask)
	if length != 3 {
		t.Fatalf("length = %d, want 3", length)
	}
	var starts []int
	for _, h := range hits {
		if h.Length == 3 && !h.ReverseComplement {
			starts = append(starts, h.ReferenceIndex)
		}
	}
	if len(starts) != 2 || starts[0] != 0 || starts[1] != 5 {
		t.Errorf("tie starts = %v, want [0 5]", starts)
	}
}

func TestLCS1ReverseComplement(t *testing.T) {
	reference := []byte("ATAGATAGATAGATAG")
	complement := sequence.ComplementOf(reference)
	sample := sequence.ReverseComplement(reference)

	hits, length := LCS1(reference, complement, 0, len(reference), sample, 0, len(sample), mask)
	if length != len(reference) {
		t.Fatalf("length = %d, want %d", length, len(reference))
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1: %+v", len(hits), hits)
	}
	h := hits[0]
	if !h.ReverseComplement {
		t.Error("hit should be a reverse complement match")
	}
	if h.ReferenceIndex != 0 || h.SampleIndex != 0 || h.Length != 16 {
		t.Errorf("hit = %+v, want {0 0 16 true}", h)
	}
}

func TestLCS1WindowOffsets(t *testing.T) {
	// The windows exclude the shared prefix; indices must stay in
	// whole-string coordinates.
	reference := []byte("AAAATTTTGCGC")
	sample := []byte("AAAAGCGC")

	hits, length := LCS1(reference, nil, 4, len(reference), sample, 4, len(sample), mask)
	if length != 4 {
		t.Fatalf("length = %d, want 4", length)
	}
	h := hits[0]
	if h.ReferenceIndex != 8 || h.SampleIndex != 4 {
		t.Errorf("hit = %+v, want reference 8, sample 4", h)
	}
}

func TestLCS1MaskBreaksRuns(t *testing.T) {
	reference := []byte("ACG$ACG")
	sample := []byte("ACG$ACG")

	_, length := LCS1(reference, nil, 0, len(reference), sample, 0, len(sample), mask)
	if length != 3 {
		t.Errorf("length = %d, want 3 (mask must not match itself)", length)
	}
}

func TestLCS1Empty(t *testing.T) {
	hits, length := LCS1([]byte("ACGT"), nil, 0, 4, []byte(""), 0, 0, mask)
	if length != 0 || len(hits) != 0 {
		t.Errorf("empty sample: got %d hits, length %d", len(hits), length)
	}
	hits, length = LCS1([]byte(""), nil, 0, 0, []byte("ACGT"), 0, 4, mask)
	if length != 0 || len(hits) != 0 {
		t.Errorf("empty reference: got %d hits, length %d", len(hits), length)
	}
}
