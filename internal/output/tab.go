// Package output provides variant list output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vardesc/vardesc/internal/extractor"
)

// TabWriter writes variants in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Reference_start",
			"Reference_end",
			"Sample_start",
			"Sample_end",
			"Type",
			"Weight",
			"Probability",
			"Shift",
			"Transposition",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single variant.
func (tw *TabWriter) Write(v extractor.Variant) error {
	weight := "-"
	probability := "-"
	shift := "-"
	if v.Type&extractor.FrameShift != 0 {
		probability = fmt.Sprintf("%g", v.Probability)
		shift = fmt.Sprintf("0x%02x", v.Shift)
	} else {
		weight = fmt.Sprintf("%d", v.Weight)
	}

	transposition := "-"
	if v.TranspositionEnd > v.TranspositionStart {
		transposition = fmt.Sprintf("%d-%d", v.TranspositionStart, v.TranspositionEnd)
	}

	_, err := fmt.Fprintf(tw.w, "%d\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
		v.ReferenceStart, v.ReferenceEnd,
		v.SampleStart, v.SampleEnd,
		v.Type, weight, probability, shift, transposition)
	return err
}

// WriteResult writes every variant of a result, frame-shift
// annotations last.
func (tw *TabWriter) WriteResult(res *extractor.Result) error {
	for _, v := range res.Variants {
		if err := tw.Write(v); err != nil {
			return err
		}
	}
	for _, v := range res.FrameShifts {
		if err := tw.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
