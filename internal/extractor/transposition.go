package extractor

import "github.com/vardesc/vardesc/internal/lcs"

// transposition tries to describe the sample window [ss,se) as a run
// of segments quoted from the full reference, in place of spelling the
// content out base by base. The run replaces reference window [rs,re).
// ok is false when the window is too small to quote profitably, when
// the gate on the inserted length relative to the reference is not
// met, or when the run exceeds its weight budget (the cost of the
// literal content).
func (c *context) transposition(rs, re, ss, se int) ([]Variant, uint64, bool) {
	sampleLength := se - ss
	if uint64(sampleLength) <= 2*c.weightPosition {
		return nil, 0, false
	}
	if float64(sampleLength) < TranspositionCutOff*float64(c.referenceLength) {
		return nil, 0, false
	}

	var run []Variant
	weight := c.extractTransposition(&run, re, ss, se)
	if len(run) == 0 || weight > uint64(sampleLength)*WeightBase {
		return nil, 0, false
	}

	run[0].Type |= TranspositionOpen
	run[len(run)-1].Type |= TranspositionClose
	run[0].ReferenceStart = rs
	run[0].ReferenceEnd = re
	return run, weight, true
}

// extractTransposition recursively splits the sample window around the
// longest substring it shares with the full reference (forward or
// reverse complement), quoting matches by reference coordinates and
// spelling out what remains. The members carry an empty reference
// range at the insertion point; the caller assigns the replaced region
// to the first member.
func (c *context) extractTransposition(run *[]Variant, at, ss, se int) uint64 {
	sampleLength := se - ss
	if sampleLength <= 0 {
		return 0
	}

	// Below this size a quote (two positions and a separator) cannot
	// undercut the literal content.
	if uint64(sampleLength) <= 2*c.weightPosition {
		weight := uint64(sampleLength) * WeightBase
		*run = append(*run, Variant{
			ReferenceStart: at,
			ReferenceEnd:   at,
			SampleStart:    ss,
			SampleEnd:      se,
			Type:           Substitution,
			Weight:         weight,
		})
		return weight
	}

	hits, length := lcs.Find(c.reference, c.complement, 0, c.referenceLength, c.sample, ss, se, 1, c.mask)
	if len(hits) == 0 || length <= 0 {
		weight := uint64(sampleLength) * WeightBase
		*run = append(*run, Variant{
			ReferenceStart: at,
			ReferenceEnd:   at,
			SampleStart:    ss,
			SampleEnd:      se,
			Type:           Substitution,
			Weight:         weight,
		})
		return weight
	}
	hit := hits[0]

	weight := 2*c.weightPosition + WeightSeparator
	typ := Identity
	if hit.ReverseComplement {
		weight += WeightInversion
		typ = ReverseComplement
	}

	total := c.extractTransposition(run, at, ss, hit.SampleIndex)
	*run = append(*run, Variant{
		ReferenceStart:     at,
		ReferenceEnd:       at,
		SampleStart:        hit.SampleIndex,
		SampleEnd:          hit.SampleIndex + hit.Length,
		Type:               typ,
		Weight:             weight,
		TranspositionStart: hit.ReferenceIndex,
		TranspositionEnd:   hit.ReferenceIndex + hit.Length,
	})
	total += weight
	total += c.extractTransposition(run, at, hit.SampleIndex+hit.Length, se)
	return total
}
