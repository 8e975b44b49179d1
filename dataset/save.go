package dataset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	manifestName = "metadata.xlsx"
	imagesDir    = "images"
	sheetName    = "Dataset"
)

// Save writes the dataset under dir: each row's image as a PNG in images/
// and one XLSX manifest whose image column holds the written relative path.
func (d *Dataset) Save(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, imagesDir), 0o755); err != nil {
		return err
	}

	columns := Columns(d.Mode)
	if columns == nil {
		return fmt.Errorf("dataset: no columns for mode %s", d.Mode)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return err
		}
	}

	for row, rec := range d.Records {
		imgRel := filepath.Join(imagesDir, fmt.Sprintf("%06d.png", row))
		if err := writePNG(filepath.Join(dir, imgRel), rec.Image); err != nil {
			return fmt.Errorf("write image %d: %w", row, err)
		}

		for i, col := range columns {
			var value any
			if col == "image" {
				value = filepath.ToSlash(imgRel)
			} else {
				value, err = columnValue(rec, col)
				if err != nil {
					return err
				}
			}

			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(filepath.Join(dir, manifestName))
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
