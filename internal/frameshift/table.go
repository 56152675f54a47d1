// Package frameshift recognises protein-level evidence of DNA frame
// shifts. A precomputed table maps two adjacent reference amino acids
// and one sample amino acid to the set of shift readings (forward by
// one or two bases, reverse strand, reverse shifted by one or two)
// under which some codon assignment of the reference pair reads as the
// sample acid. On top of the table sit a five-track LCS, a recursive
// annotation extractor with a background-frequency probability, and a
// back-translation producing the constrained DNA as IUPAC ambiguity
// codes.
package frameshift

import (
	"fmt"
	"sync"
)

// Kind is a bitmask of frame-shift readings. Its bits live in a
// namespace of their own, separate from the variant type bits.
type Kind uint8

const (
	Shift1   Kind = 0x01 // forward, shifted one base
	Shift2   Kind = 0x02 // forward, shifted two bases
	Reverse  Kind = 0x04 // reverse strand, in frame
	Reverse1 Kind = 0x08 // reverse strand, shifted one base
	Reverse2 Kind = 0x10 // reverse strand, shifted two bases
)

// StandardCodons assigns the standard genetic code to the 64 codon
// indexes. Index bits are b5b4 b3b2 b1b0 for the bases at positions
// 0, 1, 2 with A=0, C=1, G=2, T=3.
const StandardCodons = "KNKNTTTTRSRSIIMIQHQHPPPPRRRRLLLLEDEDAAAAGGGGVVVV*Y*YSSSS*CWCLFLF"

// acidFrequency holds background amino-acid frequencies used to weigh
// how likely a frame-shifted reading produces a given sample acid.
// Unassigned letters carry the smoothing prior.
var acidFrequency = func() [128]float64 {
	var f [128]float64
	for i := range f {
		f[i] = 0.05
	}
	f['A'] = 0.09515673
	f['C'] = 0.01157279
	f['D'] = 0.05151007
	f['E'] = 0.05762795
	f['F'] = 0.03890338
	f['G'] = 0.07374416
	f['H'] = 0.02266328
	f['I'] = 0.06010209
	f['K'] = 0.04406110
	f['L'] = 0.10672657
	f['M'] = 0.02819341
	f['N'] = 0.03945573
	f['P'] = 0.04425210
	f['Q'] = 0.04439959
	f['R'] = 0.05510809
	f['S'] = 0.05802322
	f['T'] = 0.05398938
	f['U'] = 0.00000221
	f['V'] = 0.07073316
	f['W'] = 0.01531018
	f['X'] = 0.00001106
	f['Y'] = 0.02845373
	return f
}()

// Table holds the frame-shift lookup derived from one codon
// assignment. It is immutable once built and safe for concurrent use.
type Table struct {
	// acidMap[a] is the 64-bit set of codon indexes coding acid a.
	acidMap [128]uint64

	shift [128][128][128]Kind

	// Per reference di-residue and shift track: how many sample acids
	// the track can produce, and their frequency-weighted sum (on top
	// of the smoothing prior).
	count     [128][128][5]uint8
	frequency [128][128][5]float64
}

var kindTracks = [5]Kind{Shift1, Shift2, Reverse, Reverse1, Reverse2}

// NewTable builds the frame-shift table for a 64-character codon
// assignment.
func NewTable(codonString string) (*Table, error) {
	if len(codonString) != 64 {
		return nil, fmt.Errorf("codon string must assign all 64 codons, got %d characters", len(codonString))
	}

	t := new(Table)
	for a := range t.frequency {
		for b := range t.frequency[a] {
			for track := range t.frequency[a][b] {
				t.frequency[a][b][track] = 0.05
			}
		}
	}

	for i := 0; i < 64; i++ {
		t.acidMap[codonString[i]&0x7f] |= 1 << i
	}

	for a := 0; a < 128; a++ {
		if t.acidMap[a] == 0 {
			continue
		}
		for b := 0; b < 128; b++ {
			if t.acidMap[b] == 0 {
				continue
			}
			for c := 0; c < 128; c++ {
				if t.acidMap[c] == 0 {
					continue
				}
				shift := t.calculateShift(a, b, c)
				t.shift[a][b][c] = shift
				for track, bit := range kindTracks {
					if shift&bit != 0 {
						t.count[a][b][track]++
						t.frequency[a][b][track] += acidFrequency[c]
					}
				}
			}
		}
	}
	return t, nil
}

// calculateShift enumerates the coding codons of reference acids a and
// b, derives the five shifted readings of the di-residue, and reports
// which of them can read as sample acid c.
func (t *Table) calculateShift(a, b, c int) Kind {
	var shift Kind
	for i := 0; i < 64; i++ {
		if t.acidMap[a]>>i&1 == 0 {
			continue
		}
		codonReverse := ((i >> 4) | (i & 0xc) | ((i & 0x3) << 4)) ^ 0x3f
		for j := 0; j < 64; j++ {
			if t.acidMap[b]>>j&1 == 0 {
				continue
			}
			codon1 := ((i & 0x3) << 4) | ((j & 0x3c) >> 2)
			codon2 := ((i & 0xf) << 2) | (j >> 4)
			codonReverse1 := (((i & 0xc) >> 2) | ((i & 0x3) << 2) | (j & 0x30)) ^ 0x3f
			codonReverse2 := ((i & 0x3) | ((j & 0x30) >> 2) | ((j & 0xc) << 2)) ^ 0x3f
			for k := 0; k < 64; k++ {
				if t.acidMap[c]>>k&1 == 0 {
					continue
				}
				if codon1 == k {
					shift |= Shift1
				}
				if codon2 == k {
					shift |= Shift2
				}
				if codonReverse == k {
					shift |= Reverse
				}
				if codonReverse1 == k {
					shift |= Reverse1
				}
				if codonReverse2 == k {
					shift |= Reverse2
				}
			}
		}
	}
	return shift
}

// Shift looks up the frame-shift kinds under which the reference
// di-residue (a, b) can read as sample acid c.
func (t *Table) Shift(a, b, c byte) Kind {
	return t.shift[a&0x7f][b&0x7f][c&0x7f]
}

// Frequency returns the frequency-weighted sum for a reference
// di-residue on one of the five shift tracks.
func (t *Table) Frequency(a, b byte, track int) float64 {
	return t.frequency[a&0x7f][b&0x7f][track]
}

var (
	tableMu sync.Mutex
	tables  = make(map[string]*Table)
)

// For returns the process-wide table for a codon string, building it
// on first use. Tables are immutable, so reuse across concurrent
// extractions is safe.
func For(codonString string) (*Table, error) {
	tableMu.Lock()
	defer tableMu.Unlock()
	if t, ok := tables[codonString]; ok {
		return t, nil
	}
	t, err := NewTable(codonString)
	if err != nil {
		return nil, err
	}
	tables[codonString] = t
	return t, nil
}
