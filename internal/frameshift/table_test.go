package frameshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := For(StandardCodons)
	require.NoError(t, err)
	return tbl
}

func TestNewTableValidatesLength(t *testing.T) {
	_, err := NewTable("KNKN")
	assert.Error(t, err)
	_, err = NewTable(StandardCodons)
	assert.NoError(t, err)
}

func TestForCachesTables(t *testing.T) {
	a := standardTable(t)
	b := standardTable(t)
	assert.Same(t, a, b)
}

func TestAcidMap(t *testing.T) {
	tbl := standardTable(t)

	// Methionine has the single codon ATG: index 001110 = 14.
	assert.EqualValues(t, uint64(1)<<14, tbl.acidMap['M'])

	// Leucine has six codons.
	count := 0
	for i := 0; i < 64; i++ {
		if tbl.acidMap['L']>>i&1 == 1 {
			count++
		}
	}
	assert.Equal(t, 6, count)

	// Unassigned letters have no codons.
	assert.Zero(t, tbl.acidMap['Z'])
}

func TestShiftForward(t *testing.T) {
	tbl := standardTable(t)

	// The one-base shift over Asp-Tyr (GAY TAY) reads TTA/CTA: always
	// leucine, nothing else.
	assert.NotZero(t, tbl.Shift('D', 'Y', 'L')&Shift1)
	for _, acid := range []byte("ACDEFGHIKMNPQRSTVWY*") {
		assert.Zero(t, tbl.Shift('D', 'Y', acid)&Shift1, "fs1(D,Y) should not read %c", acid)
	}

	// The one-base shift over Tyr-Ser can read phenylalanine (TAT TCT
	// shifts to TTC).
	assert.NotZero(t, tbl.Shift('Y', 'S', 'F')&Shift1)

	// And Ser-Leu can read proline (TCC CTx shifts to CCT).
	assert.NotZero(t, tbl.Shift('S', 'L', 'P')&Shift1)
}

func TestShiftReverse(t *testing.T) {
	tbl := standardTable(t)

	// The reverse complement of ATG (Met) is CAT (His).
	assert.NotZero(t, tbl.Shift('M', 'M', 'H')&Reverse)
	// Trp has the single codon TGG; its reverse complement CCA is Pro.
	assert.NotZero(t, tbl.Shift('W', 'W', 'P')&Reverse)
	assert.Zero(t, tbl.Shift('W', 'W', 'G')&Reverse)
}

func TestFrequencyCarriesPrior(t *testing.T) {
	tbl := standardTable(t)

	// fs1(D,Y) reads exactly {L}: prior plus the leucine background
	// frequency.
	assert.InDelta(t, 0.05+0.10672657, tbl.Frequency('D', 'Y', 0), 1e-9)

	// A pair with no fs1 readings keeps the bare prior.
	assert.InDelta(t, 0.05, tbl.Frequency('Z', 'Z', 0), 1e-9)
}

func TestExtractFrameShift(t *testing.T) {
	tbl := standardTable(t)

	annotations := tbl.Extract([]byte("MDYSL"), 1, 5, []byte("MALFP"), 1, 5)
	require.Len(t, annotations, 1)

	a := annotations[0]
	assert.Equal(t, Shift1, a.Kind)
	assert.Equal(t, 1, a.ReferenceStart)
	assert.Equal(t, 4, a.ReferenceEnd)
	assert.Equal(t, 2, a.SampleStart)
	assert.Equal(t, 5, a.SampleEnd)

	want := tbl.Frequency('D', 'Y', 0) * tbl.Frequency('Y', 'S', 0) * tbl.Frequency('S', 'L', 0)
	assert.InDelta(t, want, a.Probability, 1e-12)
	assert.Greater(t, a.Probability, 0.0)
	assert.Less(t, a.Probability, 1.0)
}

func TestExtractEmptyWindows(t *testing.T) {
	tbl := standardTable(t)

	assert.Empty(t, tbl.Extract([]byte("MDYSL"), 2, 2, []byte("MALFP"), 1, 5))
	assert.Empty(t, tbl.Extract([]byte("MDYSL"), 1, 5, []byte("MALFP"), 3, 3))
}

func TestBacktranslateReverse(t *testing.T) {
	tbl := standardTable(t)

	// Met (ATG) read on the opposite strand is His (CAT).
	referenceDNA, sampleDNA := tbl.Backtranslate([]byte("M"), 0, []byte("H"), 0, 1, Reverse)
	assert.Equal(t, "ATG", string(referenceDNA))
	assert.Equal(t, "CAT", string(sampleDNA))
}

func TestBacktranslateShift1(t *testing.T) {
	tbl := standardTable(t)

	// Asp-Tyr shifted one base reads Leu: GAY TAY yields TTA or CTA.
	referenceDNA, sampleDNA := tbl.Backtranslate([]byte("DY"), 0, []byte("L"), 0, 1, Shift1)
	assert.Equal(t, "GAY", string(referenceDNA))
	assert.Equal(t, "YTA", string(sampleDNA))
}
