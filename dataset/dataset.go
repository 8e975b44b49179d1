// Package dataset materializes an export record stream into a tabular
// dataset: optional seeded shuffling, train/test splitting, and saving to
// disk as an image directory plus an XLSX manifest.
package dataset

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/l0rn0r/pagexml-hf/export"
)

// ErrBadRatio rejects train ratios outside (0, 1).
var ErrBadRatio = errors.New("dataset: train ratio must be between 0 and 1 exclusive")

// Dataset is a materialized list of export records sharing one mode.
type Dataset struct {
	Mode    export.Mode
	Records []export.Record
}

// Collect drains a record sequence into a dataset.
func Collect(mode export.Mode, records iter.Seq[export.Record]) *Dataset {
	d := &Dataset{Mode: mode}
	for rec := range records {
		d.Records = append(d.Records, rec)
	}
	return d
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Shuffle permutes the rows with a deterministic, seed-driven permutation.
func (d *Dataset) Shuffle(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d.Records), func(i, j int) {
		d.Records[i], d.Records[j] = d.Records[j], d.Records[i]
	})
}

// Split partitions the rows into train and test sets, with the first
// trainRatio share (rounded down) going to train. Shuffle first for a random
// split.
func (d *Dataset) Split(trainRatio float64) (train, test *Dataset, err error) {
	if trainRatio <= 0 || trainRatio >= 1 {
		return nil, nil, ErrBadRatio
	}

	n := int(float64(len(d.Records)) * trainRatio)
	train = &Dataset{Mode: d.Mode, Records: d.Records[:n]}
	test = &Dataset{Mode: d.Mode, Records: d.Records[n:]}
	return train, test, nil
}

// Columns returns the manifest column names for a mode, image column first.
func Columns(mode export.Mode) []string {
	switch mode {
	case export.ModeRaw:
		return []string{"image", "xml", "filename", "project"}
	case export.ModeText:
		return []string{"image", "text", "filename", "project"}
	case export.ModeRegion:
		return []string{"image", "text", "region_type", "region_id", "reading_order", "filename", "project"}
	case export.ModeLine:
		return []string{"image", "text", "line_id", "line_reading_order", "region_id", "region_reading_order", "region_type", "filename", "project"}
	case export.ModeWindow:
		return []string{"image", "text", "window_size", "window_index", "line_ids", "line_reading_orders", "region_id", "region_reading_order", "region_type", "filename", "project"}
	default:
		return nil
	}
}

// columnValue extracts one manifest cell from a record.
func columnValue(rec export.Record, column string) (any, error) {
	switch column {
	case "xml":
		return rec.XML, nil
	case "text":
		return rec.Text, nil
	case "filename":
		return rec.Filename, nil
	case "project":
		return rec.Project, nil
	case "region_type":
		return rec.RegionType, nil
	case "region_id":
		return rec.RegionID, nil
	case "reading_order", "region_reading_order":
		return rec.RegionReadingOrder, nil
	case "line_id":
		return rec.LineID, nil
	case "line_reading_order":
		return rec.LineReadingOrder, nil
	case "window_size":
		return rec.WindowSize, nil
	case "window_index":
		return rec.WindowIndex, nil
	case "line_ids":
		return rec.LineIDs, nil
	case "line_reading_orders":
		return rec.LineReadingOrders, nil
	default:
		return nil, fmt.Errorf("dataset: unknown column %q", column)
	}
}
