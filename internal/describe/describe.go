// Package describe renders extraction results as HGVS-style allele
// descriptions and orchestrates extraction runs: sequential, cached,
// or batched over a worker pool.
package describe

import (
	"fmt"
	"strings"

	"github.com/vardesc/vardesc/internal/extractor"
	"github.com/vardesc/vardesc/internal/frameshift"
)

// positionRange renders a half-open reference range 1-based inclusive:
// "7" for a single position, "4_8" for a span.
func positionRange(start, end int) string {
	if end-start == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d_%d", start+1, end)
}

// Allele renders the variant list as one allele description. Identity
// runs are not described; an unchanged sequence renders as "=".
// Multiple operations are bracketed and separated by semicolons.
func Allele(reference, sample []byte, variants []extractor.Variant) string {
	var parts []string
	for i := 0; i < len(variants); i++ {
		v := variants[i]
		switch {
		case v.Type&extractor.TranspositionOpen != 0:
			run := []extractor.Variant{v}
			for v.Type&extractor.TranspositionClose == 0 && i+1 < len(variants) {
				i++
				v = variants[i]
				run = append(run, v)
			}
			parts = append(parts, transpositionRun(sample, run))
		case v.Type == extractor.Identity:
			// unchanged
		case v.Type == extractor.ReverseComplement:
			parts = append(parts, positionRange(v.ReferenceStart, v.ReferenceEnd)+"inv")
		default:
			parts = append(parts, substitution(reference, sample, v))
		}
	}
	switch len(parts) {
	case 0:
		return "="
	case 1:
		return parts[0]
	default:
		return "[" + strings.Join(parts, ";") + "]"
	}
}

// substitution renders a SUBSTITUTION variant: SNP, deletion,
// insertion or delins depending on the window shapes.
func substitution(reference, sample []byte, v extractor.Variant) string {
	referenceLength := v.ReferenceEnd - v.ReferenceStart
	sampleLength := v.SampleEnd - v.SampleStart
	switch {
	case referenceLength == 1 && sampleLength == 1:
		return fmt.Sprintf("%d%c>%c", v.ReferenceStart+1, reference[v.ReferenceStart], sample[v.SampleStart])
	case sampleLength == 0:
		return positionRange(v.ReferenceStart, v.ReferenceEnd) + "del"
	case referenceLength == 0:
		return fmt.Sprintf("%d_%dins%s", v.ReferenceStart, v.ReferenceStart+1, sample[v.SampleStart:v.SampleEnd])
	default:
		return fmt.Sprintf("%sdelins%s", positionRange(v.ReferenceStart, v.ReferenceEnd), sample[v.SampleStart:v.SampleEnd])
	}
}

// transpositionRun renders an OPEN..CLOSE run: segments quoted from
// the reference by coordinates (possibly inverted) mixed with literal
// content, as the inserted part of an insertion or delins.
func transpositionRun(sample []byte, run []extractor.Variant) string {
	var segments []string
	for _, m := range run {
		switch {
		case m.Type&extractor.ReverseComplement != 0:
			segments = append(segments, positionRange(m.TranspositionStart, m.TranspositionEnd)+"inv")
		case m.Type&extractor.Identity != 0:
			segments = append(segments, positionRange(m.TranspositionStart, m.TranspositionEnd))
		default:
			segments = append(segments, string(sample[m.SampleStart:m.SampleEnd]))
		}
	}
	inserted := "[" + strings.Join(segments, ";") + "]"

	first := run[0]
	if first.ReferenceEnd == first.ReferenceStart {
		return fmt.Sprintf("%d_%dins%s", first.ReferenceStart, first.ReferenceStart+1, inserted)
	}
	return fmt.Sprintf("%sdelins%s", positionRange(first.ReferenceStart, first.ReferenceEnd), inserted)
}

// FrameShiftKinds names the set bits of a frame-shift kind mask.
func FrameShiftKinds(kind frameshift.Kind) string {
	names := []struct {
		bit  frameshift.Kind
		name string
	}{
		{frameshift.Shift1, "fs1"},
		{frameshift.Shift2, "fs2"},
		{frameshift.Reverse, "inv"},
		{frameshift.Reverse1, "inv1"},
		{frameshift.Reverse2, "inv2"},
	}
	var parts []string
	for _, n := range names {
		if kind&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// FrameShifts renders the protein frame-shift annotations, one line
// per annotated segment, with the back-translated DNA constraint.
func FrameShifts(reference, sample []byte, annotations []extractor.Variant, table *frameshift.Table) []string {
	var lines []string
	for _, v := range annotations {
		kind := frameshift.Kind(v.Shift)
		length := v.ReferenceEnd - v.ReferenceStart
		referenceDNA, sampleDNA := table.Backtranslate(reference, v.ReferenceStart, sample, v.SampleStart, length, kind)
		lines = append(lines, fmt.Sprintf("%sdelins%s %s probability=%g dna %s>%s",
			positionRange(v.ReferenceStart, v.ReferenceEnd),
			sample[v.SampleStart:v.SampleEnd],
			FrameShiftKinds(kind),
			v.Probability,
			referenceDNA,
			sampleDNA))
	}
	return lines
}
