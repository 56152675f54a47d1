package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vardesc/vardesc/internal/describe"
	"github.com/vardesc/vardesc/internal/extractor"
	"github.com/vardesc/vardesc/internal/fasta"
	"github.com/vardesc/vardesc/internal/frameshift"
	"github.com/vardesc/vardesc/internal/output"
	"github.com/vardesc/vardesc/internal/store"
)

func newExtractCmd() *cobra.Command {
	var (
		seqType      string
		codonString  string
		outputFormat string
		outputFile   string
		useCache     bool
		cachePath    string
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "extract <reference> <sample>...",
		Short: "Extract the variant description between a reference and samples",
		Long: `Extract the variant description between a reference and one or more
samples. Arguments are literal sequences, or paths to FASTA files. A
sample FASTA with multiple records is extracted record by record,
concurrently.`,
		Example: `  vardesc extract ATAGATGATAGATAGATAGAT ATAGATGATTGATAGATAGAT
  vardesc extract --type protein MDYSL MALFP
  vardesc extract -f tab reference.fa samples.fa
  vardesc extract --cache reference.fa sample.fa`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(extractConfig{
				seqType:      seqType,
				codonString:  codonString,
				outputFormat: outputFormat,
				outputFile:   outputFile,
				useCache:     useCache,
				cachePath:    cachePath,
				workers:      workers,
			}, args)
		},
	}

	cmd.Flags().StringVarP(&seqType, "type", "t", "dna", "Sequence type: dna, protein, other")
	cmd.Flags().StringVar(&codonString, "codon-string", frameshift.StandardCodons,
		"64-character codon to amino acid assignment (protein only)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "hgvs", "Output format: hgvs, tab, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Cache extraction results in DuckDB")
	cmd.Flags().StringVar(&cachePath, "cache-path", "", "Cache database path (default from config, else in-memory)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count for multi-sample extraction (0 = NumCPU)")

	return cmd
}

type extractConfig struct {
	seqType      string
	codonString  string
	outputFormat string
	outputFile   string
	useCache     bool
	cachePath    string
	workers      int
}

func parseSequenceType(s string) (extractor.SequenceType, error) {
	switch s {
	case "dna", "rna":
		return extractor.DNA, nil
	case "protein":
		return extractor.Protein, nil
	case "other":
		return extractor.Other, nil
	default:
		return 0, fmt.Errorf("unknown sequence type %q (want dna, protein or other)", s)
	}
}

// loadSequences resolves an argument into named sequences: the records
// of a FASTA file if the argument is a readable path, else the literal
// argument itself.
func loadSequences(arg string) ([]fasta.Record, error) {
	if _, err := os.Stat(arg); err == nil {
		return fasta.ReadFile(arg)
	}
	return []fasta.Record{{ID: "", Seq: bytes.ToUpper([]byte(arg))}}, nil
}

func runExtract(cfg extractConfig, args []string) error {
	seqType, err := parseSequenceType(cfg.seqType)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	references, err := loadSequences(args[0])
	if err != nil {
		return fmt.Errorf("read reference: %w", err)
	}
	reference := references[0]

	var samples []fasta.Record
	for _, arg := range args[1:] {
		records, err := loadSequences(arg)
		if err != nil {
			return fmt.Errorf("read sample: %w", err)
		}
		samples = append(samples, records...)
	}

	describer, err := describe.New(extractor.Options{
		Type:        seqType,
		CodonString: cfg.codonString,
	})
	if err != nil {
		return err
	}
	describer.SetLogger(logger)

	if cfg.useCache {
		path := cfg.cachePath
		if path == "" {
			path = viper.GetString("cache.path")
		}
		s, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer s.Close()
		describer.SetStore(s)
	}

	out := os.Stdout
	if cfg.outputFile != "" {
		out, err = os.Create(cfg.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	items := make(chan describe.WorkItem, len(samples))
	for i, s := range samples {
		items <- describe.WorkItem{Seq: i, Name: s.ID, Sample: s.Seq}
	}
	close(items)

	results := describer.ParallelDescribe(reference.Seq, items, cfg.workers)

	return describe.OrderedCollect(results, func(r describe.WorkResult) error {
		if r.Err != nil {
			return fmt.Errorf("extract %s: %w", r.Name, r.Err)
		}
		return writeExtraction(out, cfg.outputFormat, r, len(samples) > 1)
	})
}

func writeExtraction(out *os.File, format string, r describe.WorkResult, named bool) error {
	e := r.Extraction
	switch format {
	case "hgvs":
		prefix := ""
		if named && r.Name != "" {
			prefix = r.Name + "\t"
		}
		if _, err := fmt.Fprintf(out, "%s%s\n", prefix, e.Allele); err != nil {
			return err
		}
		for _, line := range e.FrameShifts {
			if _, err := fmt.Fprintf(out, "%s# frame shift: %s\n", prefix, line); err != nil {
				return err
			}
		}
		return nil
	case "tab":
		if e.Result == nil {
			return fmt.Errorf("tab output not available for cached result %q", e.Allele)
		}
		tw := output.NewTabWriter(out)
		if err := tw.WriteHeader(); err != nil {
			return err
		}
		if err := tw.WriteResult(e.Result); err != nil {
			return err
		}
		return tw.Flush()
	case "json":
		if e.Result == nil {
			return fmt.Errorf("json output not available for cached result %q", e.Allele)
		}
		return output.NewJSONWriter(out).WriteResult(e.Result, e.Allele)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
