package frameshift

import "github.com/vardesc/vardesc/internal/sequence"

// orCodon accumulates the base bits of a packed codon index into three
// consecutive 4-bit base sets.
func orCodon(dna []uint8, at, codon int) {
	dna[at] |= 1 << (codon >> 4)
	dna[at+1] |= 1 << ((codon >> 2) & 0x3)
	dna[at+2] |= 1 << (codon & 0x3)
}

// Backtranslate computes the DNA bases consistent with a frame-shift
// hit of the given length and kinds: for every reference acid position
// and every codon assignment compatible with the shift, the possible
// bases are aggregated per position and rendered as IUPAC ambiguity
// letters. Two 3*length strings are returned, one for the reference
// reading and one for the sample reading; reverse kinds write the
// sample codons back to front.
func (t *Table) Backtranslate(reference []byte, referenceStart int, sample []byte, sampleStart int, length int, kind Kind) (referenceDNA, sampleDNA []byte) {
	refBits := make([]uint8, 3*length)
	sampleBits := make([]uint8, 3*length)

	for p := 0; p < length; p++ {
		acid := t.acidMap[reference[referenceStart+p]&0x7f]
		for i := 0; i < 64; i++ {
			if acid>>i&1 == 0 {
				continue
			}
			codonReverse := ((i >> 4) | (i & 0xc) | ((i & 0x3) << 4)) ^ 0x3f

			if kind&Reverse != 0 {
				reverseAcid := t.acidMap[sample[sampleStart+length-p-1]&0x7f]
				if reverseAcid>>codonReverse&1 == 1 {
					orCodon(refBits, p*3, i)
					orCodon(sampleBits, (length-p)*3-3, codonReverse)
				}
			}

			// The shifted kinds read the next reference acid too.
			if kind&(Shift1|Shift2|Reverse1|Reverse2) == 0 {
				continue
			}
			if referenceStart+p+1 >= len(reference) {
				continue
			}
			pair := t.acidMap[reference[referenceStart+p+1]&0x7f]
			for j := 0; j < 64; j++ {
				if pair>>j&1 == 0 {
					continue
				}
				codon1 := ((i & 0x3) << 4) | ((j & 0x3c) >> 2)
				codon2 := ((i & 0xf) << 2) | (j >> 4)
				codonReverse1 := (((i & 0xc) >> 2) | ((i & 0x3) << 2) | (j & 0x30)) ^ 0x3f
				codonReverse2 := ((i & 0x3) | ((j & 0x30) >> 2) | ((j & 0xc) << 2)) ^ 0x3f

				forwardAcid := t.acidMap[sample[sampleStart+p]&0x7f]
				if kind&Shift1 != 0 && forwardAcid>>codon1&1 == 1 {
					orCodon(refBits, p*3, i)
					orCodon(sampleBits, p*3, codon1)
				}
				if kind&Shift2 != 0 && forwardAcid>>codon2&1 == 1 {
					orCodon(refBits, p*3, i)
					orCodon(sampleBits, p*3, codon2)
				}

				reverseAcid := t.acidMap[sample[sampleStart+length-p-1]&0x7f]
				if kind&Reverse1 != 0 && reverseAcid>>codonReverse1&1 == 1 {
					orCodon(refBits, p*3, i)
					orCodon(sampleBits, (length-p)*3-3, codonReverse1)
				}
				if kind&Reverse2 != 0 && reverseAcid>>codonReverse2&1 == 1 {
					orCodon(refBits, p*3, i)
					orCodon(sampleBits, (length-p)*3-3, codonReverse2)
				}
			}
		}
	}

	referenceDNA = make([]byte, 3*length)
	sampleDNA = make([]byte, 3*length)
	for i := range refBits {
		referenceDNA[i] = sequence.Ambiguity[refBits[i]]
		sampleDNA[i] = sequence.Ambiguity[sampleBits[i]]
	}
	return referenceDNA, sampleDNA
}
