package lcs

import "github.com/vardesc/vardesc/internal/sequence"

// LCSk approximates the longest common substrings of the reference
// window [rs,re) and the sample window [ss,se) by matching
// non-overlapping reference k-mers against overlapping sample k-mers,
// then extending the collected hits at character granularity. Hits at
// least as long as the returned length are exact common substrings;
// the returned length is a lower bound on the true LCS length unless
// it reaches 2k (see Find).
//
// Returns no hits when k <= 1 or either window is shorter than k.
func LCSk(reference, complement []byte, rs, re int, sample []byte, ss, se int, k int, mask byte) ([]Substring, int) {
	if k <= 1 || re-rs < k || se-ss < k {
		return nil, 0
	}

	referenceLength := (re - rs) / k // non-overlapping blocks
	sampleLength := se - ss - k + 1  // overlapping k-mers
	if referenceLength <= 0 {
		return nil, 0
	}

	// A sample k-mer at offset i extends the run ending at offset i-k,
	// so k+1 rows are live at any time.
	line := make([][]int, k+1)
	lineRC := make([][]int, k+1)
	for i := range line {
		line[i] = make([]int, referenceLength)
		lineRC[i] = make([]int, referenceLength)
	}

	var result []Substring
	length := 0

	// collect appends a hit in k-mer coordinates, purging on a strict
	// improvement: hits two or more k-mers short can never win, and the
	// direct predecessor of the new hit is subsumed by it.
	collect := func(i, j, cell int, rc bool) {
		if cell > length {
			length = cell
			for e := 0; e < len(result); e++ {
				if length-result[e].Length > 1 ||
					(result[e].ReferenceIndex == j-1 && result[e].SampleIndex == i-k) {
					result = append(result[:e], result[e+1:]...)
					e--
				}
			}
			result = append(result, Substring{j, i, cell, rc})
		} else if length-cell <= 1 {
			result = append(result, Substring{j, i, cell, rc})
		}
	}

	for i := 0; i < sampleLength; i++ {
		for j := 0; j < referenceLength; j++ {
			if sequence.Match(reference, rs+j*k, sample, ss+i, k, mask) {
				if i < k || j == 0 {
					line[i%(k+1)][j] = 1
				} else {
					line[i%(k+1)][j] = line[(i+1)%(k+1)][j-1] + 1
				}
				collect(i, j, line[i%(k+1)][j], false)
			} else {
				line[i%(k+1)][j] = 0
			}

			// Complement strand: block j counts from the end of the
			// window and the complement is read backwards.
			if complement != nil && sequence.MatchReverse(complement, re-j*k-1, sample, ss+i, k, mask) {
				if i < k || j == 0 {
					lineRC[i%(k+1)][j] = 1
				} else {
					lineRC[i%(k+1)][j] = lineRC[(i+1)%(k+1)][j-1] + 1
				}
				collect(i, j, lineRC[i%(k+1)][j], true)
			} else {
				lineRC[i%(k+1)][j] = 0
			}
		}
	}

	// Convert to character coordinates and extend every hit up to k-1
	// characters on both sides.
	length *= k
	for i := range result {
		h := &result[i]
		if h.ReverseComplement {
			h.ReferenceIndex = re - (h.ReferenceIndex+1)*k
			h.SampleIndex = h.SampleIndex - (h.Length-1)*k + ss
			h.Length *= k

			// Towards the start of the sample; the reference run grows
			// at its right edge.
			var j int
			for j = 1; j < k; j++ {
				if h.ReferenceIndex+h.Length+j-1 >= re || h.SampleIndex-j < ss ||
					!sequence.MatchReverse(complement, h.ReferenceIndex+h.Length+j-1, sample, h.SampleIndex-j, 1, mask) {
					break
				}
			}
			h.SampleIndex -= j - 1
			h.Length += j - 1

			// Towards the end of the sample; the reference run grows at
			// its left edge.
			for j = 1; j < k; j++ {
				if h.ReferenceIndex-j < rs || h.SampleIndex+h.Length+j-1 >= se ||
					!sequence.MatchReverse(complement, h.ReferenceIndex-j, sample, h.SampleIndex+h.Length+j-1, 1, mask) {
					break
				}
			}
			h.ReferenceIndex -= j - 1
			h.Length += j - 1
		} else {
			h.ReferenceIndex = (h.ReferenceIndex+1)*k + rs - 1 - h.Length*k + 1
			h.SampleIndex = h.SampleIndex - (h.Length-1)*k + ss
			h.Length *= k

			var j int
			for j = 1; j < k; j++ {
				if h.ReferenceIndex-j < rs || h.SampleIndex-j < ss ||
					!sequence.Match(reference, h.ReferenceIndex-j, sample, h.SampleIndex-j, 1, mask) {
					break
				}
			}
			h.ReferenceIndex -= j - 1
			h.SampleIndex -= j - 1
			h.Length += j - 1

			for j = 0; j < k-1; j++ {
				if h.ReferenceIndex+h.Length+j >= re || h.SampleIndex+h.Length+j >= se ||
					!sequence.Match(reference, h.ReferenceIndex+h.Length+j, sample, h.SampleIndex+h.Length+j, 1, mask) {
					break
				}
			}
			h.Length += j
		}
		if h.Length > length {
			length = h.Length
		}
	}

	// Keep only hits of the final maximum length; a forward hit beats a
	// reverse complement hit of the same length.
	forward := false
	for _, h := range result {
		if h.Length == length && !h.ReverseComplement {
			forward = true
			break
		}
	}
	keep := result[:0]
	for _, h := range result {
		if h.Length == length && !(forward && h.ReverseComplement) {
			keep = append(keep, h)
		}
	}

	return keep, length
}
