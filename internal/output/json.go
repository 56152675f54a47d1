package output

import (
	"encoding/json"
	"io"

	"github.com/vardesc/vardesc/internal/extractor"
)

// jsonVariant is the wire shape of a variant. The type is emitted both
// as the stable integer bitfield and as its readable rendering.
type jsonVariant struct {
	ReferenceStart     int     `json:"reference_start"`
	ReferenceEnd       int     `json:"reference_end"`
	SampleStart        int     `json:"sample_start"`
	SampleEnd          int     `json:"sample_end"`
	Type               uint32  `json:"type"`
	TypeName           string  `json:"type_name"`
	Weight             uint64  `json:"weight,omitempty"`
	Probability        float64 `json:"probability,omitempty"`
	Shift              uint8   `json:"shift,omitempty"`
	TranspositionStart int     `json:"transposition_start,omitempty"`
	TranspositionEnd   int     `json:"transposition_end,omitempty"`
}

type jsonResult struct {
	Weight      uint64        `json:"weight"`
	Description string        `json:"description,omitempty"`
	Variants    []jsonVariant `json:"variants"`
	FrameShifts []jsonVariant `json:"frame_shifts,omitempty"`
}

// JSONWriter writes a whole result as one JSON document.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer with indented output.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

func toJSONVariant(v extractor.Variant) jsonVariant {
	return jsonVariant{
		ReferenceStart:     v.ReferenceStart,
		ReferenceEnd:       v.ReferenceEnd,
		SampleStart:        v.SampleStart,
		SampleEnd:          v.SampleEnd,
		Type:               uint32(v.Type),
		TypeName:           v.Type.String(),
		Weight:             v.Weight,
		Probability:        v.Probability,
		Shift:              v.Shift,
		TranspositionStart: v.TranspositionStart,
		TranspositionEnd:   v.TranspositionEnd,
	}
}

// WriteResult encodes the result, including its rendered description.
func (jw *JSONWriter) WriteResult(res *extractor.Result, description string) error {
	out := jsonResult{
		Weight:      res.Weight,
		Description: description,
	}
	for _, v := range res.Variants {
		out.Variants = append(out.Variants, toJSONVariant(v))
	}
	for _, v := range res.FrameShifts {
		out.FrameShifts = append(out.FrameShifts, toJSONVariant(v))
	}
	return jw.enc.Encode(out)
}
