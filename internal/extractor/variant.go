// Package extractor turns a reference and an observed sample string
// into a minimal-weight ordered list of edit operations suitable for
// emission as an HGVS-style variant description. DNA extractions also
// match against the reverse complement strand and quote inserted
// regions from the reference (transpositions); protein extractions are
// annotated with plausible DNA-level frame shifts.
package extractor

import "strings"

// Type is a bitfield describing a variant. Some combinations are
// meaningless: SUBSTITUTION excludes IDENTITY and REVERSE_COMPLEMENT,
// and the transposition bits only decorate the first and last member
// of a transposition run.
type Type uint32

const (
	Identity           Type = 0x01
	ReverseComplement  Type = 0x02
	Substitution       Type = 0x04
	TranspositionOpen  Type = 0x08
	TranspositionClose Type = 0x10
	FrameShift         Type = 0x20
)

var typeNames = []struct {
	bit  Type
	name string
}{
	{Identity, "identity"},
	{ReverseComplement, "reverse_complement"},
	{Substitution, "substitution"},
	{TranspositionOpen, "transposition_open"},
	{TranspositionClose, "transposition_close"},
	{FrameShift, "frame_shift"},
}

// String renders the set bits joined by "|", e.g.
// "identity|transposition_open".
func (t Type) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for _, n := range typeNames {
		if t&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Description weight constants. These are part of the contract:
// the recursion is weight-guided, so changing them changes the
// produced variant list.
const (
	WeightBase              = 1 // one description character, e.g. A
	WeightDeletion          = 3 // del
	WeightDeletionInsertion = 6 // delins
	WeightInsertion         = 3 // ins
	WeightInversion         = 3 // inv
	WeightSeparator         = 1 // _
	WeightSubstitution      = 1 // >
)

// ThresholdCutOff is the reference window length at or above which the
// LCS driver refuses the quadratic fallback.
const ThresholdCutOff = 16000

// TranspositionCutOff bounds the inserted regions worth matching
// against the full reference, as a fraction of the reference length.
const TranspositionCutOff = 0.1

// Variant describes one edit operation. The reference range is the
// region replaced, the sample range the replacement content; both are
// half-open. When the variant quotes a region of the reference (an
// identity or inverted transposition), TranspositionStart/End name the
// source region. Weight is the description-length cost; frame-shift
// variants carry a Probability and a Shift kind mask instead.
type Variant struct {
	ReferenceStart     int
	ReferenceEnd       int
	SampleStart        int
	SampleEnd          int
	Type               Type
	Weight             uint64
	Probability        float64
	Shift              uint8
	TranspositionStart int
	TranspositionEnd   int
}
