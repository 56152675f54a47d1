// Package sequence provides byte-level primitives over nucleotide and
// protein strings: shared prefix/suffix lengths, fixed-length forward
// and reverse equality, and the IUPAC complement.
package sequence

// DefaultMask is the byte treated as a repeat-masked position. A masked
// position never matches anything, including another masked position.
const DefaultMask = '$'

// PrefixMatch returns the length of the shared prefix of reference and
// sample. Masked reference positions terminate the prefix.
func PrefixMatch(reference, sample []byte, mask byte) int {
	n := min(len(reference), len(sample))
	i := 0
	for i < n && reference[i] == sample[i] && reference[i] != mask {
		i++
	}
	return i
}

// SuffixMatch returns the length of the shared suffix of reference and
// sample. The shared prefix must be computed first and passed in so the
// suffix never overlaps it.
func SuffixMatch(reference, sample []byte, prefix int, mask byte) int {
	n := min(len(reference), len(sample)) - prefix
	i := 0
	for i < n &&
		reference[len(reference)-i-1] == sample[len(sample)-i-1] &&
		reference[len(reference)-i-1] != mask {
		i++
	}
	return i
}

// Match reports whether the n bytes of a starting at ai equal the n
// bytes of b starting at bi. A masked byte on either side is a
// mismatch.
func Match(a []byte, ai int, b []byte, bi int, n int, mask byte) bool {
	for i := 0; i < n; i++ {
		if a[ai+i] != b[bi+i] || a[ai+i] == mask {
			return false
		}
	}
	return true
}

// MatchReverse reports whether the n bytes of a ending at ai (walking
// towards the start) equal the n bytes of b starting at bi. The caller
// positions ai at the last reference position of the window; this is
// the equality used for reverse complement runs, where the complement
// strand reads towards the start of the reference.
func MatchReverse(a []byte, ai int, b []byte, bi int, n int, mask byte) bool {
	for i := 0; i < n; i++ {
		if a[ai-i] != b[bi+i] || a[ai-i] == mask {
			return false
		}
	}
	return true
}
