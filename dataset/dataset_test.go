package dataset

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/l0rn0r/pagexml-hf/export"
)

func testRecords(n int) []export.Record {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}

	records := make([]export.Record, n)
	for i := range records {
		records[i] = export.Record{
			Mode:     export.ModeText,
			Image:    img,
			Text:     string(rune('a' + i)),
			Filename: "0001.png",
			Project:  "proj",
		}
	}
	return records
}

func recordTexts(d *Dataset) []string {
	out := make([]string, len(d.Records))
	for i, rec := range d.Records {
		out[i] = rec.Text
	}
	return out
}

func TestCollect(t *testing.T) {
	records := testRecords(3)
	seq := func(yield func(export.Record) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}

	d := Collect(export.ModeText, seq)
	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}
}

func TestSplit(t *testing.T) {
	d := &Dataset{Mode: export.ModeText, Records: testRecords(10)}

	train, test, err := d.Split(0.8)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if train.Len() != 8 || test.Len() != 2 {
		t.Errorf("split = %d/%d, want 8/2", train.Len(), test.Len())
	}

	if _, _, err := d.Split(0); !errors.Is(err, ErrBadRatio) {
		t.Errorf("Split(0) err = %v", err)
	}
	if _, _, err := d.Split(1); !errors.Is(err, ErrBadRatio) {
		t.Errorf("Split(1) err = %v", err)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := &Dataset{Mode: export.ModeText, Records: testRecords(20)}
	b := &Dataset{Mode: export.ModeText, Records: testRecords(20)}

	a.Shuffle(42)
	b.Shuffle(42)
	if !slices.Equal(recordTexts(a), recordTexts(b)) {
		t.Error("same seed must produce the same permutation")
	}

	c := &Dataset{Mode: export.ModeText, Records: testRecords(20)}
	c.Shuffle(7)
	if slices.Equal(recordTexts(a), recordTexts(c)) {
		t.Error("different seeds should produce different permutations")
	}
}

func TestColumns(t *testing.T) {
	for _, mode := range []export.Mode{export.ModeRaw, export.ModeText, export.ModeRegion, export.ModeLine, export.ModeWindow} {
		cols := Columns(mode)
		if len(cols) == 0 {
			t.Errorf("no columns for mode %s", mode)
			continue
		}
		if cols[0] != "image" {
			t.Errorf("mode %s: first column = %q, want image", mode, cols[0])
		}
		// Every non-image column must be extractable.
		for _, col := range cols[1:] {
			if _, err := columnValue(export.Record{}, col); err != nil {
				t.Errorf("mode %s: column %q: %v", mode, col, err)
			}
		}
	}
}

func TestSave(t *testing.T) {
	d := &Dataset{Mode: export.ModeText, Records: testRecords(2)}

	dir := t.TempDir()
	if err := d.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "metadata.xlsx")); err != nil {
		t.Errorf("manifest missing: %v", err)
	}
	for _, name := range []string{"000000.png", "000001.png"} {
		if _, err := os.Stat(filepath.Join(dir, "images", name)); err != nil {
			t.Errorf("image %s missing: %v", name, err)
		}
	}
}
