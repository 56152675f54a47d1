package lcs

import (
	"bytes"
	"testing"

	"github.com/vardesc/vardesc/internal/sequence"
)

func TestLCSkForward(t *testing.T) {
	// Reference blocks of four: TTTT ACGT ACGT GGGG. The sample chains
	// the two ACGT blocks; the sample window leaves no room to extend
	// on either side.
	reference := []byte("TTTTACGTACGTGGGG")
	sample := []byte("ACGTACGT")

	hits, length := LCSk(reference, nil, 0, len(reference), sample, 0, len(sample), 4, mask)
	if length != 8 {
		t.Fatalf("length = %d, want 8", length)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1: %+v", len(hits), hits)
	}
	h := hits[0]
	if h.ReferenceIndex != 4 || h.SampleIndex != 0 || h.Length != 8 || h.ReverseComplement {
		t.Errorf("hit = %+v, want {4 0 8 false}", h)
	}
	if !bytes.Equal(reference[h.ReferenceIndex:h.ReferenceIndex+h.Length], sample[h.SampleIndex:h.SampleIndex+h.Length]) {
		t.Error("hit does not name equal substrings")
	}
}

func TestLCSkReverseComplement(t *testing.T) {
	// The sample is the reverse complement of the whole reference; the
	// alphabets of the two strings are disjoint, so only the
	// complement track can match.
	reference := []byte("AAAACCCCAAAACCCC")
	complement := sequence.ComplementOf(reference)
	sample := sequence.ReverseComplement(reference)

	hits, length := LCSk(reference, complement, 0, len(reference), sample, 0, len(sample), 4, mask)
	if length != 16 {
		t.Fatalf("length = %d, want 16", length)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1: %+v", len(hits), hits)
	}
	h := hits[0]
	if h.ReferenceIndex != 0 || h.SampleIndex != 0 || h.Length != 16 || !h.ReverseComplement {
		t.Errorf("hit = %+v, want {0 0 16 true}", h)
	}
}

func TestLCSkForwardBeatsReverseOnTie(t *testing.T) {
	// A reference whose sample matches both strands at the same length
	// keeps only the forward hit.
	reference := []byte("ACGTTGCAACGTTGCA")
	complement := sequence.ComplementOf(reference)
	sample := []byte("ACGTTGCA")

	hits, length := LCSk(reference, complement, 0, len(reference), sample, 0, len(sample), 4, mask)
	if length != 8 {
		t.Fatalf("length = %d, want 8", length)
	}
	for _, h := range hits {
		if h.ReverseComplement {
			t.Errorf("reverse complement hit survived a forward tie: %+v", h)
		}
	}
}

func TestLCSkDegenerateInputs(t *testing.T) {
	reference := []byte("ACGTACGT")
	sample := []byte("ACGT")

	if hits, _ := LCSk(reference, nil, 0, len(reference), sample, 0, len(sample), 1, mask); hits != nil {
		t.Error("k = 1 should yield no hits")
	}
	if hits, _ := LCSk(reference, nil, 0, len(reference), sample, 0, len(sample), 5, mask); hits != nil {
		t.Error("sample window shorter than k should yield no hits")
	}
	if hits, _ := LCSk(reference, nil, 0, 2, sample, 0, len(sample), 3, mask); hits != nil {
		t.Error("reference window shorter than k should yield no hits")
	}
}

func TestFindFallsBackToClassic(t *testing.T) {
	// Windows this small never enter the k-mer loop; the classical
	// programme answers.
	reference := []byte("GGGACGTGGG")
	sample := []byte("TTACGTTT")

	hits, length := Find(reference, nil, 0, len(reference), sample, 0, len(sample), 1, mask)
	if length != 4 || len(hits) != 1 {
		t.Fatalf("length = %d, hits = %+v; want one hit of length 4", length, hits)
	}
	if hits[0].ReferenceIndex != 3 || hits[0].SampleIndex != 2 {
		t.Errorf("hit = %+v, want {3 2 4 false}", hits[0])
	}
}

func TestFindCutOffSuppressesClassic(t *testing.T) {
	reference := []byte("GGGACGTGGG")
	sample := []byte("TTACGTTT")

	hits, length := Find(reference, nil, 0, len(reference), sample, 0, len(sample), 2, mask)
	if len(hits) != 0 || length != 0 {
		t.Errorf("cutOff > 1 must suppress the quadratic fallback, got %+v", hits)
	}
}

func TestFindLargeSimilarStrings(t *testing.T) {
	// Two long strings sharing a 1200-character run; the k-mer path
	// must find it without the quadratic fallback.
	run := bytes.Repeat([]byte("ACGGTTCA"), 150) // 1200 characters
	reference := append(append(bytes.Repeat([]byte("T"), 200), run...), bytes.Repeat([]byte("G"), 200)...)
	sample := append(append(bytes.Repeat([]byte("C"), 100), run...), bytes.Repeat([]byte("A"), 100)...)

	hits, length := Find(reference, nil, 0, len(reference), sample, 0, len(sample), 2, mask)
	if length < 1200 {
		t.Fatalf("length = %d, want >= 1200", length)
	}
	if len(hits) == 0 {
		t.Fatal("no hits returned")
	}
	found := false
	for _, h := range hits {
		if h.Length == length &&
			bytes.Equal(reference[h.ReferenceIndex:h.ReferenceIndex+h.Length], sample[h.SampleIndex:h.SampleIndex+h.Length]) {
			found = true
		}
	}
	if !found {
		t.Errorf("no hit names equal substrings: %+v", hits)
	}
}
