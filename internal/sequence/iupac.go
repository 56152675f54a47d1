package sequence

// complementTable maps every byte to its IUPAC nucleotide complement.
// Bytes without a complement (including the mask byte and protein
// letters) map to themselves.
var complementTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'},
		{'C', 'G'},
		{'B', 'V'},
		{'D', 'H'},
		{'K', 'M'},
		{'R', 'Y'},
	}
	for _, p := range pairs {
		t[p.a] = p.b
		t[p.b] = p.a
	}
	t['U'] = 'A'
	return t
}()

// Complement returns the IUPAC complement of a single base. Bases
// outside the IUPAC nucleotide alphabet are returned unchanged.
func Complement(base byte) byte {
	return complementTable[base]
}

// ComplementOf returns a newly allocated complement of s. The result is
// NOT reversed: reverse complement runs read it towards the start.
func ComplementOf(s []byte) []byte {
	c := make([]byte, len(s))
	for i, b := range s {
		c[i] = complementTable[b]
	}
	return c
}

// ReverseComplement returns the reverse complement of s as a new
// buffer.
func ReverseComplement(s []byte) []byte {
	c := make([]byte, len(s))
	for i, b := range s {
		c[len(s)-i-1] = complementTable[b]
	}
	return c
}

// Ambiguity maps a 4-bit base set (A=1, C=2, G=4, T=8) to its IUPAC
// ambiguity letter. Index 0 has no defined letter.
var Ambiguity = [16]byte{
	'x', // 0x00
	'A', // 0x01
	'C', // 0x02
	'M', // 0x03  A | C
	'G', // 0x04
	'R', // 0x05  A | G
	'S', // 0x06  C | G
	'V', // 0x07  A | C | G
	'T', // 0x08
	'W', // 0x09  A | T
	'Y', // 0x0a  C | T
	'H', // 0x0b  A | C | T
	'K', // 0x0c  G | T
	'D', // 0x0d  A | G | T
	'B', // 0x0e  C | G | T
	'N', // 0x0f  A | C | G | T
}

// Base maps a 2-bit packed base to its letter: A=0, C=1, G=2, T=3.
// Codon indexes pack three of these, base 0 in the high bits.
var Base = [4]byte{'A', 'C', 'G', 'T'}
