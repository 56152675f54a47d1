package extractor

import "github.com/vardesc/vardesc/internal/lcs"

// extract appends an ordered sequence of variants covering reference
// window [rs,re) and sample window [ss,se) exactly, apart from masked
// bytes at the window edges, which are trimmed and covered by no
// variant, and returns the summed weight. The recursion decomposes around a longest common
// substring and abandons any decomposition that grows heavier than the
// single deletion/insertion describing the whole window.
func (c *context) extract(variants *[]Variant, rs, re, ss, se int) uint64 {
	// Masked bytes never participate in matches and must not appear as
	// unmatched content either.
	for rs < re && c.reference[rs] == c.mask {
		rs++
	}
	for re > rs && c.reference[re-1] == c.mask {
		re--
	}
	for ss < se && c.sample[ss] == c.mask {
		ss++
	}
	for se > ss && c.sample[se-1] == c.mask {
		se--
	}

	referenceLength := re - rs
	sampleLength := se - ss

	wp := c.weightPosition
	trivial := wp + WeightDeletionInsertion + WeightBase*uint64(sampleLength)
	if referenceLength != 1 {
		trivial += wp + WeightSeparator
	}

	// Insertions: nothing left of the reference window. Prefer quoting
	// the inserted content from the full reference over spelling it
	// out.
	if referenceLength <= 0 {
		if sampleLength <= 0 {
			return 0
		}
		weight := 2*wp + WeightSeparator + WeightInsertion + WeightBase*uint64(sampleLength)
		if run, runWeight, ok := c.transposition(rs, re, ss, se); ok {
			framed := runWeight + 2*wp + 3*WeightSeparator + WeightInsertion
			if framed < weight {
				*variants = append(*variants, run...)
				return framed
			}
		}
		*variants = append(*variants, Variant{
			ReferenceStart: rs,
			ReferenceEnd:   re,
			SampleStart:    ss,
			SampleEnd:      se,
			Type:           Substitution,
			Weight:         weight,
		})
		return weight
	}

	// Deletions: nothing left of the sample window.
	if sampleLength <= 0 {
		weight := wp + WeightDeletion
		if referenceLength > 1 {
			weight += wp + WeightSeparator
		}
		*variants = append(*variants, Variant{
			ReferenceStart: rs,
			ReferenceEnd:   re,
			SampleStart:    ss,
			SampleEnd:      se,
			Type:           Substitution,
			Weight:         weight,
		})
		return weight
	}

	// Simple substitutions (SNPs).
	if referenceLength == 1 && sampleLength == 1 {
		weight := wp + 2*WeightBase + WeightSubstitution
		*variants = append(*variants, Variant{
			ReferenceStart: rs,
			ReferenceEnd:   re,
			SampleStart:    ss,
			SampleEnd:      se,
			Type:           Substitution,
			Weight:         weight,
		})
		return weight
	}

	cutOff := 1
	if referenceLength >= ThresholdCutOff {
		cutOff = int(wp)
	}
	hits, length := lcs.Find(c.reference, c.complement, rs, re, c.sample, ss, se, cutOff, c.mask)
	if len(hits) == 0 || length <= 0 {
		return c.deletionInsertion(variants, rs, re, ss, se, trivial)
	}

	// Among hits tied at the maximum length, the one leaving the most
	// balanced remainders on both sides; ties resolve by first
	// encountered.
	best := 0
	bestDiff := int(^uint(0) >> 1)
	for i, h := range hits {
		d := abs((h.ReferenceIndex-rs)-(h.SampleIndex-ss)) +
			abs((re-h.ReferenceIndex-h.Length)-(se-h.SampleIndex-h.Length))
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	hit := hits[best]

	var weight uint64
	if hit.ReverseComplement {
		weight = 2*wp + WeightSeparator + WeightInversion
	}

	var prefix []Variant
	weight += c.extract(&prefix, rs, hit.ReferenceIndex, ss, hit.SampleIndex)
	if weight > trivial {
		return c.deletionInsertion(variants, rs, re, ss, se, trivial)
	}

	var suffix []Variant
	weight += c.extract(&suffix, hit.ReferenceIndex+hit.Length, re, hit.SampleIndex+hit.Length, se)
	if weight > trivial {
		return c.deletionInsertion(variants, rs, re, ss, se, trivial)
	}

	*variants = append(*variants, prefix...)
	v := Variant{
		ReferenceStart: hit.ReferenceIndex,
		ReferenceEnd:   hit.ReferenceIndex + hit.Length,
		SampleStart:    hit.SampleIndex,
		SampleEnd:      hit.SampleIndex + hit.Length,
		Type:           Identity,
	}
	if hit.ReverseComplement {
		v.Type = ReverseComplement
		v.Weight = 2*wp + WeightSeparator + WeightInversion
	}
	*variants = append(*variants, v)
	*variants = append(*variants, suffix...)
	return weight
}

// deletionInsertion describes the whole window as a single delins of
// trivial weight, after first trying to quote the replacement content
// from the full reference.
func (c *context) deletionInsertion(variants *[]Variant, rs, re, ss, se int, trivial uint64) uint64 {
	if run, runWeight, ok := c.transposition(rs, re, ss, se); ok {
		framed := runWeight + 2*c.weightPosition + 3*WeightSeparator + WeightDeletionInsertion
		if framed < trivial {
			*variants = append(*variants, run...)
			return framed
		}
	}
	*variants = append(*variants, Variant{
		ReferenceStart: rs,
		ReferenceEnd:   re,
		SampleStart:    ss,
		SampleEnd:      se,
		Type:           Substitution,
		Weight:         trivial,
	})
	return trivial
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
