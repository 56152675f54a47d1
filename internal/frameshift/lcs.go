package frameshift

// substring is a frame-shift LCS hit: a run of sample acids readable
// from consecutive reference di-residues under one shift kind.
type substring struct {
	referenceIndex int
	sampleIndex    int
	length         int
	kind           Kind
}

// lcsFrameShift runs the five-track dynamic programme over the sample
// window. Track 0 extends on Shift1 evidence at reference pair
// (j-1, j), track 1 on Shift2; tracks 2-4 extend the reverse kinds on
// pairs read from the end of the reference window. Each track
// accumulates its longest diagonal chain independently; the result is
// exactly one candidate per track.
func (t *Table) lcsFrameShift(reference []byte, rs, re int, sample []byte, ss, se int) [5]substring {
	referenceLength := re - rs
	sampleLength := se - ss

	rows := [2][][5]int{
		make([][5]int, referenceLength),
		make([][5]int, referenceLength),
	}

	var best [5]substring
	for i := 0; i < sampleLength; i++ {
		cur := rows[i%2]
		prev := rows[(i+1)%2]

		// At j == 0 only the plain reverse track has evidence: the last
		// reference acid read against itself on the opposite strand.
		cur[0] = [5]int{}
		if t.Shift(reference[re-1], reference[re-1], sample[ss+i])&Reverse != 0 {
			cur[0][2] = 1
		}
		if cur[0][2] > best[2].length {
			best[2] = substring{re - 1, ss + i - cur[0][2] + 1, cur[0][2], Reverse}
		}

		for j := 1; j < referenceLength; j++ {
			forward := t.Shift(reference[rs+j-1], reference[rs+j], sample[ss+i])
			reverse := t.Shift(reference[re-j-1], reference[re-j], sample[ss+i])

			extend := func(track int, evidence bool) {
				if evidence {
					cur[j][track] = prev[j-1][track] + 1
				} else {
					cur[j][track] = 0
				}
			}
			extend(0, forward&Shift1 != 0)
			extend(1, forward&Shift2 != 0)
			extend(2, reverse&Reverse != 0)
			extend(3, reverse&Reverse1 != 0)
			extend(4, reverse&Reverse2 != 0)

			if cur[j][0] > best[0].length {
				best[0] = substring{rs + j - cur[j][0], ss + i - cur[j][0] + 1, cur[j][0], Shift1}
			}
			if cur[j][1] > best[1].length {
				best[1] = substring{rs + j - cur[j][1], ss + i - cur[j][1] + 1, cur[j][1], Shift2}
			}
			if cur[j][2] > best[2].length {
				best[2] = substring{re - j - 1, ss + i - cur[j][2] + 1, cur[j][2], Reverse}
			}
			if cur[j][3] > best[3].length {
				best[3] = substring{re - j - 1, ss + i - cur[j][3] + 1, cur[j][3], Reverse1}
			}
			if cur[j][4] > best[4].length {
				best[4] = substring{re - j - 1, ss + i - cur[j][4] + 1, cur[j][4], Reverse2}
			}
		}
	}
	return best
}
