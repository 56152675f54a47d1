package lcs

// LCS1 computes all longest common substrings of the reference window
// [rs,re) and the sample window [ss,se) with the classical two-row
// dynamic programme. If complement is non-nil a parallel track matches
// the sample against the reverse complement strand. The hit vector
// holds every hit tied at the returned maximum length; reverse
// complement hits displace forward hits only on a strict improvement.
// Masked positions never match.
func LCS1(reference, complement []byte, rs, re int, sample []byte, ss, se int, mask byte) ([]Substring, int) {
	referenceLength := re - rs
	sampleLength := se - ss
	if referenceLength <= 0 || sampleLength <= 0 {
		return nil, 0
	}

	// Only the current and the previous row are kept.
	line := [2][]int{make([]int, referenceLength), make([]int, referenceLength)}
	lineRC := [2][]int{make([]int, referenceLength), make([]int, referenceLength)}

	var result []Substring
	length := 0

	for i := 0; i < sampleLength; i++ {
		for j := 0; j < referenceLength; j++ {
			if reference[rs+j] == sample[ss+i] && reference[rs+j] != mask {
				if i == 0 || j == 0 {
					line[i%2][j] = 1
				} else {
					line[i%2][j] = line[(i+1)%2][j-1] + 1
				}
				if line[i%2][j] > length {
					length = line[i%2][j]
					result = result[:0]
					result = append(result, Substring{j - length + rs + 1, i - length + ss + 1, length, false})
				} else if line[i%2][j] == length {
					result = append(result, Substring{j - length + rs + 1, i - length + ss + 1, length, false})
				}
			} else {
				line[i%2][j] = 0
			}

			// The same recurrence on the complement strand; the
			// complement is traversed towards the start of the window.
			if complement != nil && complement[re-j-1] == sample[ss+i] && complement[re-j-1] != mask {
				if i == 0 || j == 0 {
					lineRC[i%2][j] = 1
				} else {
					lineRC[i%2][j] = lineRC[(i+1)%2][j-1] + 1
				}
				if lineRC[i%2][j] > length {
					length = lineRC[i%2][j]
					result = result[:0]
					result = append(result, Substring{re - j - 1, i - length + ss + 1, length, true})
				} else if lineRC[i%2][j] == length {
					result = append(result, Substring{re - j - 1, i - length + ss + 1, length, true})
				}
			} else {
				lineRC[i%2][j] = 0
			}
		}
		// The whole sample window matched on either track; no longer
		// hit can exist.
		if length == sampleLength {
			break
		}
	}

	return result, length
}
