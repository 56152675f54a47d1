package extractor

import (
	"fmt"

	"github.com/vardesc/vardesc/internal/frameshift"
	"github.com/vardesc/vardesc/internal/sequence"
)

// SequenceType selects the extraction branch. DNA builds a complement
// of the reference and matches against the reverse strand; Protein
// runs the frame-shift annotation pass; anything else matches forward
// only.
type SequenceType int

const (
	DNA SequenceType = iota
	Protein
	Other
)

func (t SequenceType) String() string {
	switch t {
	case DNA:
		return "dna"
	case Protein:
		return "protein"
	default:
		return "other"
	}
}

// Options configure an extraction run.
type Options struct {
	Type SequenceType

	// CodonString assigns an amino acid to each of the 64 codon
	// indexes; required for Protein, ignored otherwise.
	CodonString string

	// Mask is the byte treated as repeat-masked; zero selects the
	// default '$'.
	Mask byte
}

// Result is the outcome of one extraction run. Variants tiles both
// strings in ascending reference order; masked bytes trimmed from the
// edges of a window are covered by no variant. FrameShifts is a
// protein-only annotation overlay: frame-shift readings of regions
// already described as substitutions, so its members overlap Variants
// by construction.
type Result struct {
	Variants    []Variant
	FrameShifts []Variant
	Weight      uint64
}

// Extract computes the ordered list of edit operations rewriting
// reference into sample.
func Extract(reference, sample []byte, opts Options) (*Result, error) {
	mask := opts.Mask
	if mask == 0 {
		mask = sequence.DefaultMask
	}
	kind := opts.Type
	if kind != DNA && kind != Protein {
		kind = Other
	}

	var table *frameshift.Table
	if kind == Protein {
		var err error
		table, err = frameshift.For(opts.CodonString)
		if err != nil {
			return nil, fmt.Errorf("frame shift table: %w", err)
		}
	}

	result := &Result{}
	if len(reference) == 0 && len(sample) == 0 {
		return result, nil
	}

	c := &context{
		reference:       reference,
		sample:          sample,
		referenceLength: len(reference),
		weightPosition:  positionWeight(len(reference)),
		mask:            mask,
	}
	if kind == DNA {
		c.complement = sequence.ComplementOf(reference)
	}

	// Common prefix and suffix, in that order, never re-enter the
	// recursion.
	prefix := sequence.PrefixMatch(reference, sample, mask)
	suffix := sequence.SuffixMatch(reference, sample, prefix, mask)

	if prefix > 0 {
		result.Variants = append(result.Variants, Variant{
			ReferenceStart: 0,
			ReferenceEnd:   prefix,
			SampleStart:    0,
			SampleEnd:      prefix,
			Type:           Identity,
		})
	}

	result.Weight = c.extract(&result.Variants, prefix, len(reference)-suffix, prefix, len(sample)-suffix)

	if suffix > 0 {
		result.Variants = append(result.Variants, Variant{
			ReferenceStart: len(reference) - suffix,
			ReferenceEnd:   len(reference),
			SampleStart:    len(sample) - suffix,
			SampleEnd:      len(sample),
			Type:           Identity,
		})
	}

	if kind == Protein {
		annotateFrameShifts(result, reference, sample, table)
	}
	return result, nil
}

// annotateFrameShifts re-processes every substitution that reads as a
// deletion/insertion, attaching the frame-shift readings that
// plausibly generated it.
func annotateFrameShifts(result *Result, reference, sample []byte, table *frameshift.Table) {
	for _, v := range result.Variants {
		if v.Type != Substitution {
			continue
		}
		referenceLength := v.ReferenceEnd - v.ReferenceStart
		sampleLength := v.SampleEnd - v.SampleStart
		if referenceLength <= 0 || sampleLength <= 0 {
			continue
		}
		if referenceLength == 1 && sampleLength == 1 {
			continue
		}
		for _, a := range table.Extract(reference, v.ReferenceStart, v.ReferenceEnd, sample, v.SampleStart, v.SampleEnd) {
			result.FrameShifts = append(result.FrameShifts, Variant{
				ReferenceStart: a.ReferenceStart,
				ReferenceEnd:   a.ReferenceEnd,
				SampleStart:    a.SampleStart,
				SampleEnd:      a.SampleEnd,
				Type:           FrameShift,
				Shift:          uint8(a.Kind),
				Probability:    a.Probability,
			})
		}
	}
}
