// Package lcs finds longest common substrings between a reference and
// a sample window, optionally matching against the reference's reverse
// complement strand. It offers the classical dynamic programme for
// small windows and a k-mer bucketed approximation that stays
// tractable on long similar strings.
package lcs

// Substring is a common substring hit. ReferenceIndex and SampleIndex
// are the starting positions of the run in their respective strings.
// A reverse complement hit matches the complement strand read towards
// the start of the reference; its ReferenceIndex still names the
// leftmost reference position of the run.
type Substring struct {
	ReferenceIndex    int
	SampleIndex       int
	Length            int
	ReverseComplement bool
}
