package frameshift

// Annotation is one frame-shifted segment: the sample acids in
// [SampleStart,SampleEnd) are readable from the reference acids in
// [ReferenceStart,ReferenceEnd) under every kind in Kind, with the
// given probability of arising by chance.
type Annotation struct {
	ReferenceStart int
	ReferenceEnd   int
	SampleStart    int
	SampleEnd      int
	Kind           Kind
	Probability    float64
}

// Extract recursively annotates the window pair with frame-shift
// segments, splitting around the longest frame-shift LCS the way the
// main extractor splits around a common substring.
func (t *Table) Extract(reference []byte, rs, re int, sample []byte, ss, se int) []Annotation {
	var out []Annotation
	t.extract(&out, reference, rs, re, sample, ss, se)
	return out
}

func (t *Table) extract(out *[]Annotation, reference []byte, rs, re int, sample []byte, ss, se int) {
	if re-rs <= 0 || se-ss <= 0 {
		return
	}

	candidates := t.lcsFrameShift(reference, rs, re, sample, ss, se)

	// Pick the best fitting hit: strictly longest, pushed as far
	// towards the start of the reference as possible. Tracks agreeing
	// on position and length merge into a compound annotation.
	var lcs substring
	for _, h := range candidates {
		if h.length > lcs.length ||
			(h.length == lcs.length && h.length > 0 && h.referenceIndex < lcs.referenceIndex) {
			lcs = h
		} else if h.length == lcs.length &&
			h.referenceIndex == lcs.referenceIndex && h.sampleIndex == lcs.sampleIndex {
			lcs.kind |= h.kind
		}
	}
	if lcs.length <= 0 {
		return
	}

	probability := t.probability(reference, lcs)

	t.extract(out, reference, rs, lcs.referenceIndex, sample, ss, lcs.sampleIndex)
	*out = append(*out, Annotation{
		ReferenceStart: lcs.referenceIndex,
		ReferenceEnd:   lcs.referenceIndex + lcs.length,
		SampleStart:    lcs.sampleIndex,
		SampleEnd:      lcs.sampleIndex + lcs.length,
		Kind:           lcs.kind,
		Probability:    probability,
	})
	t.extract(out, reference, lcs.referenceIndex+lcs.length, re, sample, lcs.sampleIndex+lcs.length, se)
}

// probability multiplies, over the hit's positions, the
// frequency-weighted chance that the reference di-residue reads as
// some acid under the hit's kinds. The plain reverse kind reads a
// single acid against itself; the shifted kinds read the acid pair.
func (t *Table) probability(reference []byte, h substring) float64 {
	p := 1.0
	for i := 0; i < h.length; i++ {
		a := reference[h.referenceIndex+i]
		compound := 0.0
		if h.kind&Shift1 != 0 {
			compound += t.Frequency(a, reference[h.referenceIndex+i+1], 0)
		}
		if h.kind&Shift2 != 0 {
			compound += t.Frequency(a, reference[h.referenceIndex+i+1], 1)
		}
		if h.kind&Reverse != 0 {
			compound += t.Frequency(a, a, 2)
		}
		if h.kind&Reverse1 != 0 {
			compound += t.Frequency(a, reference[h.referenceIndex+i+1], 3)
		}
		if h.kind&Reverse2 != 0 {
			compound += t.Frequency(a, reference[h.referenceIndex+i+1], 4)
		}
		p *= compound
	}
	if p > 1 {
		p = 1
	}
	return p
}
