package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vardesc/vardesc/internal/extractor"
)

func TestParseSequenceType(t *testing.T) {
	tests := []struct {
		in      string
		want    extractor.SequenceType
		wantErr bool
	}{
		{"dna", extractor.DNA, false},
		{"rna", extractor.DNA, false},
		{"protein", extractor.Protein, false},
		{"other", extractor.Other, false},
		{"genome", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSequenceType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSequenceType(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSequenceType(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSequenceType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadSequencesLiteral(t *testing.T) {
	records, err := loadSequences("acgt")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || string(records[0].Seq) != "ACGT" {
		t.Errorf("records = %+v", records)
	}
}

func TestLoadSequencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.fa")
	if err := os.WriteFile(path, []byte(">r1\nAACC\n>r2\nGGTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := loadSequences(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].ID != "r1" || string(records[1].Seq) != "GGTT" {
		t.Errorf("records = %+v", records)
	}
}
