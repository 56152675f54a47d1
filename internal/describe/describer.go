package describe

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vardesc/vardesc/internal/extractor"
	"github.com/vardesc/vardesc/internal/frameshift"
	"github.com/vardesc/vardesc/internal/store"
)

// Extraction bundles an extraction result with its rendered
// description. Result is nil when the description was served from
// the cache.
type Extraction struct {
	Result      *extractor.Result
	Allele      string
	FrameShifts []string
	Cached      bool
}

// Describer runs extractions against one configuration and renders the
// results. The zero logger is a nop; a store is optional.
type Describer struct {
	opts   extractor.Options
	logger *zap.Logger
	store  *store.Store
	table  *frameshift.Table
}

// New creates a describer for the given extraction options.
func New(opts extractor.Options) (*Describer, error) {
	d := &Describer{
		opts:   opts,
		logger: zap.NewNop(),
	}
	if opts.Type == extractor.Protein {
		table, err := frameshift.For(opts.CodonString)
		if err != nil {
			return nil, err
		}
		d.table = table
	}
	return d, nil
}

// SetLogger sets the logger for progress and cache messages.
func (d *Describer) SetLogger(l *zap.Logger) {
	d.logger = l
}

// SetStore enables result caching.
func (d *Describer) SetStore(s *store.Store) {
	d.store = s
}

// Describe extracts the variants between reference and sample and
// renders the allele description. With a store configured, a
// previously described pair is answered from the cache.
func (d *Describer) Describe(reference, sample []byte) (*Extraction, error) {
	referenceDigest := store.Digest(reference)
	sampleDigest := store.Digest(sample)

	if d.store != nil {
		entry, err := d.store.Get(referenceDigest, sampleDigest, d.opts.Type.String())
		if err != nil {
			return nil, fmt.Errorf("cache lookup: %w", err)
		}
		if entry != nil {
			d.logger.Debug("served from cache",
				zap.String("reference", referenceDigest[:12]),
				zap.String("sample", sampleDigest[:12]))
			return &Extraction{Allele: entry.Description, Cached: true}, nil
		}
	}

	start := time.Now()
	result, err := extractor.Extract(reference, sample, d.opts)
	if err != nil {
		return nil, err
	}

	extraction := &Extraction{
		Result: result,
		Allele: Allele(reference, sample, result.Variants),
	}
	if d.table != nil && len(result.FrameShifts) > 0 {
		extraction.FrameShifts = FrameShifts(reference, sample, result.FrameShifts, d.table)
	}

	d.logger.Info("extracted",
		zap.Int("reference_length", len(reference)),
		zap.Int("sample_length", len(sample)),
		zap.Int("variants", len(result.Variants)),
		zap.Int("frame_shifts", len(result.FrameShifts)),
		zap.Uint64("weight", result.Weight),
		zap.Duration("elapsed", time.Since(start)))

	if d.store != nil {
		err := d.store.Put(store.Entry{
			ReferenceDigest: referenceDigest,
			SampleDigest:    sampleDigest,
			Type:            d.opts.Type.String(),
			Description:     extraction.Allele,
			Weight:          result.Weight,
			VariantCount:    len(result.Variants),
		})
		if err != nil {
			d.logger.Warn("failed to cache extraction", zap.Error(err))
		}
	}

	return extraction, nil
}
