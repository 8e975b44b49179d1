package export

import (
	"image"
	"strconv"
	"strings"

	"github.com/l0rn0r/pagexml-hf/geometry"
	"github.com/l0rn0r/pagexml-hf/model"
)

// Record is one flat output row. Which fields are meaningful depends on
// Mode:
//
//	raw:    Image, XML, Filename, Project
//	text:   Image, Text, Filename, Project
//	region: Image, Text, RegionType, RegionID, RegionReadingOrder,
//	        Filename, Project
//	line:   region fields plus LineID, LineReadingOrder
//	window: region fields plus WindowSize, WindowIndex, LineIDs,
//	        LineReadingOrders
type Record struct {
	Mode  Mode
	Image image.Image

	XML  string
	Text string

	Filename string
	Project  string

	RegionID           string
	RegionType         string
	RegionReadingOrder int

	LineID           string
	LineReadingOrder int

	WindowSize        int
	WindowIndex       int
	LineIDs           string
	LineReadingOrders string
}

func (e *Exporter) emitRaw(page *model.Page, img image.Image, yield func(Record) bool) bool {
	e.processed++
	return yield(Record{
		Mode:     ModeRaw,
		Image:    img,
		XML:      page.XML,
		Filename: page.ImageFilename,
		Project:  page.Project,
	})
}

func (e *Exporter) emitText(page *model.Page, img image.Image, yield func(Record) bool) bool {
	e.processed++
	return yield(Record{
		Mode:     ModeText,
		Image:    img,
		Text:     page.Text(),
		Filename: page.ImageFilename,
		Project:  page.Project,
	})
}

func (e *Exporter) emitRegions(page *model.Page, img image.Image, yield func(Record) bool) bool {
	for _, region := range page.Regions {
		if !region.HasText() && !e.cfg.AllowEmpty {
			e.skip("skipping region without text", "region", region.ID, "page", page.ImageFilename)
			continue
		}

		cropped, err := geometry.Crop(img, region.Coords, geometry.CropOptions{
			Mask:     e.cfg.Mask,
			MinWidth: e.cfg.MinWidth,
		})
		if err != nil {
			e.skip("skipping region crop", "region", region.ID, "page", page.ImageFilename, "error", err)
			continue
		}

		text := ""
		if region.FullText != nil {
			text = *region.FullText
		}

		e.processed++
		ok := yield(Record{
			Mode:               ModeRegion,
			Image:              cropped,
			Text:               text,
			RegionType:         region.Type,
			RegionID:           region.ID,
			RegionReadingOrder: region.ReadingOrder,
			Filename:           page.ImageFilename,
			Project:            page.Project,
		})
		if !ok {
			return false
		}
	}
	return true
}

func (e *Exporter) emitLines(page *model.Page, img image.Image, yield func(Record) bool) bool {
	for _, region := range page.Regions {
		for _, line := range region.Lines {
			if !line.HasText() && !e.cfg.AllowEmpty {
				e.skip("skipping line without text", "line", line.ID, "page", page.ImageFilename)
				continue
			}

			cropped, err := geometry.Crop(img, line.Coords, geometry.CropOptions{
				Mask:     e.cfg.Mask,
				MinWidth: e.cfg.MinWidth,
			})
			if err != nil {
				e.skip("skipping line crop", "line", line.ID, "page", page.ImageFilename, "error", err)
				continue
			}

			e.processed++
			ok := yield(Record{
				Mode:               ModeLine,
				Image:              cropped,
				Text:               line.TextOrEmpty(),
				LineID:             line.ID,
				LineReadingOrder:   line.ReadingOrder,
				RegionID:           line.RegionID,
				RegionReadingOrder: region.ReadingOrder,
				RegionType:         region.Type,
				Filename:           page.ImageFilename,
				Project:            page.Project,
			})
			if !ok {
				return false
			}
		}
	}
	return true
}

func (e *Exporter) emitWindows(page *model.Page, img image.Image, yield func(Record) bool) bool {
	for _, region := range page.Regions {
		windows := SlidingWindows(region.Lines, e.cfg.WindowSize, e.cfg.Overlap)

		for idx, window := range windows {
			var polys []model.Polygon
			for _, line := range window {
				if len(line.Coords) > 0 {
					polys = append(polys, line.Coords)
				}
			}
			if len(polys) == 0 {
				e.skip("skipping window without coordinates", "region", region.ID, "window", idx, "page", page.ImageFilename)
				continue
			}

			rect := geometry.BoundingRect(polys...)
			cropped, err := geometry.Crop(img, rect, geometry.CropOptions{Mask: e.cfg.Mask})
			if err != nil {
				e.skip("skipping window crop", "region", region.ID, "window", idx, "page", page.ImageFilename, "error", err)
				continue
			}

			var texts, ids, orders []string
			for _, line := range window {
				if line.HasText() {
					texts = append(texts, *line.Text)
				}
				ids = append(ids, line.ID)
				orders = append(orders, strconv.Itoa(line.ReadingOrder))
			}

			e.processed++
			ok := yield(Record{
				Mode:               ModeWindow,
				Image:              cropped,
				Text:               strings.Join(texts, "\n"),
				WindowSize:         len(window),
				WindowIndex:        idx,
				LineIDs:            strings.Join(ids, ", "),
				LineReadingOrders:  strings.Join(orders, ", "),
				RegionID:           region.ID,
				RegionReadingOrder: region.ReadingOrder,
				RegionType:         region.Type,
				Filename:           page.ImageFilename,
				Project:            page.Project,
			})
			if !ok {
				return false
			}
		}
	}
	return true
}
