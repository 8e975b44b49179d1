package pagexml

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"

	"github.com/l0rn0r/pagexml-hf/dataset"
	"github.com/l0rn0r/pagexml-hf/export"
	"github.com/l0rn0r/pagexml-hf/model"
	"github.com/l0rn0r/pagexml-hf/parser"
	"github.com/l0rn0r/pagexml-hf/source"
)

// Converter provides a fluent interface for turning a PAGE-XML export into
// pages, records, or a saved dataset. Each configuration method returns a new
// Converter instance, so a configured converter can be chained further or
// reused as a template without affecting its ancestors. Terminal operations
// open the source and accumulate run state on the instance they are called
// on; call them from one goroutine at a time.
type Converter struct {
	// Source
	path string
	src  source.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if the source has been opened

	// Configuration
	options ConvertOptions

	// Exporter of the most recent Records call, for Summary.
	exporter *export.Exporter
}

// Stats summarizes the parsed content of a source without touching images.
type Stats struct {
	TotalPages        int
	TotalRegions      int
	TotalLines        int
	Projects          []string
	AvgRegionsPerPage float64
	AvgLinesPerPage   float64
}

// clone creates a shallow copy of the Converter with a deep copy of options.
// This ensures immutability: each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		path:         c.path,
		src:          c.src,
		ownsSource:   c.ownsSource,
		sourceOpened: c.sourceOpened,
		options:      c.options.clone(),
		exporter:     c.exporter,
	}
}

// ensureSource opens the source if not already open.
func (c *Converter) ensureSource() error {
	if c.sourceOpened {
		return nil
	}
	if c.path == "" {
		return fmt.Errorf("no source path specified")
	}

	src, err := source.Open(c.path)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	c.src = src
	c.ownsSource = true
	c.sourceOpened = true
	return nil
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsSource && c.src != nil {
		err := c.src.Close()
		c.src = nil
		c.ownsSource = false
		c.sourceOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Namespace overrides the PAGE-XML content namespace matched during parsing.
// The default is parser.DefaultNamespace.
//
// Example:
//
//	pages, err := pagexml.Open("export.zip").Namespace(ns).Pages()
func (c *Converter) Namespace(ns string) *Converter {
	newConv := c.clone()
	newConv.options.namespace = ns
	return newConv
}

// Mode selects the record granularity: raw pages, page text, cropped
// regions, cropped lines, or sliding windows of lines. The default is
// export.ModeText.
//
// Example:
//
//	records, err := pagexml.Open("export.zip").Mode(export.ModeRegion).Records()
func (c *Converter) Mode(mode export.Mode) *Converter {
	newConv := c.clone()
	newConv.options.mode = mode
	return newConv
}

// WindowSize sets the number of lines per sliding window. Only meaningful in
// window mode. The default is 2.
func (c *Converter) WindowSize(size int) *Converter {
	newConv := c.clone()
	newConv.options.windowSize = size
	return newConv
}

// Overlap sets the number of lines shared between consecutive windows. Only
// meaningful in window mode. The default is 0.
func (c *Converter) Overlap(overlap int) *Converter {
	newConv := c.clone()
	newConv.options.overlap = overlap
	return newConv
}

// Mask whites out the pixels outside the crop polygon instead of keeping the
// full bounding rectangle content.
//
// Example:
//
//	records, err := pagexml.Open("export.zip").Mode(export.ModeLine).Mask().Records()
func (c *Converter) Mask() *Converter {
	newConv := c.clone()
	newConv.options.mask = true
	return newConv
}

// MinWidth rejects region and line crops narrower than width pixels. Zero
// disables the check.
func (c *Converter) MinWidth(width int) *Converter {
	newConv := c.clone()
	newConv.options.minWidth = width
	return newConv
}

// AllowEmpty keeps regions and lines that carry no transcription; they export
// with empty text instead of being skipped.
func (c *Converter) AllowEmpty() *Converter {
	newConv := c.clone()
	newConv.options.allowEmpty = true
	return newConv
}

// Logger routes diagnostics for parsing and export to logger instead of
// slog.Default().
func (c *Converter) Logger(logger *slog.Logger) *Converter {
	newConv := c.clone()
	newConv.options.logger = logger
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Pages parses every layout file of the source and returns the pages,
// grouped and sorted by project. Files that cannot be read, decoded, or
// parsed are logged and skipped.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	pages, err := pagexml.Open("export.zip").Pages()
func (c *Converter) Pages() ([]model.Page, error) {
	if err := c.ensureSource(); err != nil {
		return nil, err
	}
	defer c.Close()

	return c.parsePages(), nil
}

// Records parses the source and returns the lazy record sequence for the
// configured mode. Image loading and cropping happen as the sequence is
// consumed, one page at a time, so the source must stay open until the
// consumer is done: the caller closes the Converter after draining.
// Summary reports the counters accumulated during consumption.
//
// Example:
//
//	conv := pagexml.Open("export.zip").Mode(export.ModeLine)
//	records, err := conv.Records()
//	if err != nil {
//	    // handle error
//	}
//	defer conv.Close()
//	for rec := range records {
//	    // use rec
//	}
//	summary := conv.Summary()
func (c *Converter) Records() (iter.Seq[export.Record], error) {
	if err := c.ensureSource(); err != nil {
		return nil, err
	}

	exp, err := export.New(c.src, export.Config{
		Mode:       c.options.mode,
		WindowSize: c.options.windowSize,
		Overlap:    c.options.overlap,
		Mask:       c.options.mask,
		MinWidth:   c.options.minWidth,
		AllowEmpty: c.options.allowEmpty,
		Logger:     c.options.logger,
	})
	if err != nil {
		c.Close()
		return nil, err
	}
	c.exporter = exp

	pages := c.parsePages()
	return exp.Records(pages), nil
}

// Summary returns the counters of the most recent Records run: records
// produced, inputs skipped, and the image failures encountered. Call after
// draining the record sequence.
func (c *Converter) Summary() export.Summary {
	if c.exporter == nil {
		return export.Summary{}
	}
	return c.exporter.Summary()
}

// Dataset parses the source, drains the record sequence for the configured
// mode, and returns the materialized dataset, ready for shuffling, splitting,
// and saving.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	ds, err := pagexml.Open("export.zip").Mode(export.ModeLine).Dataset()
//	if err != nil {
//	    // handle error
//	}
//	err = ds.Save("out")
func (c *Converter) Dataset() (*dataset.Dataset, error) {
	records, err := c.Records()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return dataset.Collect(c.options.mode, records), nil
}

// Stats parses the source and returns content statistics: page, region, and
// line totals, the sorted project list, and per-page averages. No image work
// is performed.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	stats, err := pagexml.Open("export.zip").Stats()
//	fmt.Printf("%d pages across %d projects\n", stats.TotalPages, len(stats.Projects))
func (c *Converter) Stats() (Stats, error) {
	pages, err := c.Pages()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalPages: len(pages)}
	seen := make(map[string]bool)
	for _, page := range pages {
		stats.TotalRegions += len(page.Regions)
		stats.TotalLines += page.LineCount()
		if !seen[page.Project] {
			seen[page.Project] = true
			stats.Projects = append(stats.Projects, page.Project)
		}
	}
	sort.Strings(stats.Projects)

	if stats.TotalPages > 0 {
		stats.AvgRegionsPerPage = float64(stats.TotalRegions) / float64(stats.TotalPages)
		stats.AvgLinesPerPage = float64(stats.TotalLines) / float64(stats.TotalPages)
	}
	return stats, nil
}

// parsePages runs the batch parser over the open source.
func (c *Converter) parsePages() []model.Page {
	p := parser.New(c.options.namespace, c.options.logger)
	return p.ParseSource(c.src)
}
