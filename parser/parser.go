// Package parser turns PAGE-XML layout documents into the typed model:
// pages with reading-order sorted regions and lines. It also carries the
// batch path from a raw source (archive or directory) to a page list,
// including project grouping and tolerant byte decoding.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/l0rn0r/pagexml-hf/model"
	"github.com/l0rn0r/pagexml-hf/source"
)

// DefaultNamespace is the historical default PAGE content namespace, used
// when the caller does not override it.
const DefaultNamespace = "http://schema.primaresearch.org/PAGE/gts/pagecontent/2013-07-15"

// DefaultRegionType is assumed for regions without an explicit type
// attribute.
const DefaultRegionType = "paragraph"

// readingOrderRe extracts the line reading order from the free-text custom
// attribute, e.g. `readingOrder {index:3;}`.
var readingOrderRe = regexp.MustCompile(`readingOrder\s*\{\s*index\s*:\s*(\d+)`)

// Parser parses PAGE-XML documents within one namespace.
type Parser struct {
	ns     string
	logger *slog.Logger
}

// New creates a parser. An empty namespace selects [DefaultNamespace]; a nil
// logger selects slog.Default().
func New(namespace string, logger *slog.Logger) *Parser {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{ns: namespace, logger: logger}
}

// Namespace returns the namespace URI the parser matches elements against.
func (p *Parser) Namespace() string {
	return p.ns
}

// ParsePage parses a single PAGE-XML document. It returns (nil, nil) when
// the document contains no recognizable page element, and a non-nil error
// only for malformed XML. Neither case is fatal for a batch; callers log and
// skip.
func (p *Parser) ParsePage(xmlContent, project string) (*model.Page, error) {
	root, err := parseTree(strings.NewReader(xmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse layout xml: %w", err)
	}

	pageElem := root.child(p.ns, "Page")
	if pageElem == nil {
		return nil, nil
	}

	page := &model.Page{
		ImageFilename: pageElem.attr("imageFilename"),
		ImageWidth:    atoiOrZero(pageElem.attr("imageWidth")),
		ImageHeight:   atoiOrZero(pageElem.attr("imageHeight")),
		ImageURL:      p.imageURL(root, pageElem),
		XML:           xmlContent,
		Project:       project,
	}

	order := p.readingOrderTable(root)
	page.Regions = p.parseRegions(root, order)

	return page, nil
}

// imageURL resolves the remote image URL: a platform metadata element wins
// over the page element's own attribute.
func (p *Parser) imageURL(root, pageElem *node) string {
	if meta := root.descendant(p.ns, "TranskribusMetadata"); meta != nil {
		if url := meta.attr("imgUrl"); url != "" {
			return url
		}
	}
	return pageElem.attr("imageURL")
}

// readingOrderTable maps region ids to their index in the page-level
// reading-order listing. Regions absent from the listing default to 0.
func (p *Parser) readingOrderTable(root *node) map[string]int {
	order := make(map[string]int)

	ro := root.descendant(p.ns, "ReadingOrder")
	if ro == nil {
		return order
	}
	for _, ref := range ro.descendants(p.ns, "RegionRefIndexed") {
		order[ref.attr("regionRef")] = atoiOrZero(ref.attr("index"))
	}
	return order
}

func (p *Parser) parseRegions(root *node, order map[string]int) []model.Region {
	var regions []model.Region

	for _, elem := range root.descendants(p.ns, "TextRegion") {
		id := elem.attr("id")

		regionType := elem.attr("type")
		if regionType == "" {
			regionType = DefaultRegionType
		}

		region := model.Region{
			ID:           id,
			Type:         regionType,
			Coords:       p.parsePolygon(elem.child(p.ns, "Coords")),
			Lines:        p.parseLines(elem, id),
			ReadingOrder: order[id],
			FullText:     p.textEquiv(elem),
		}
		regions = append(regions, region)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].ReadingOrder < regions[j].ReadingOrder
	})
	return regions
}

func (p *Parser) parseLines(regionElem *node, regionID string) []model.Line {
	var lines []model.Line

	for _, elem := range regionElem.childAll(p.ns, "TextLine") {
		line := model.Line{
			ID:           elem.attr("id"),
			Text:         p.textEquiv(elem),
			Coords:       p.parsePolygon(elem.child(p.ns, "Coords")),
			ReadingOrder: lineReadingOrder(elem.attr("custom")),
			RegionID:     regionID,
		}
		if baseline := elem.child(p.ns, "Baseline"); baseline != nil {
			line.Baseline = p.parsePolygon(baseline)
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].ReadingOrder < lines[j].ReadingOrder
	})
	return lines
}

// parsePolygon reads a space-separated "x,y" point list. Malformed pairs are
// dropped individually; they never fail the element.
func (p *Parser) parsePolygon(coordsElem *node) model.Polygon {
	if coordsElem == nil {
		return nil
	}

	points := coordsElem.attr("points")
	if points == "" {
		return nil
	}

	var poly model.Polygon
	for _, pair := range strings.Fields(points) {
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			continue
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			continue
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			continue
		}
		poly = append(poly, model.Point{X: x, Y: y})
	}
	return poly
}

// textEquiv returns the text content of the element's first text annotation,
// or nil when no annotation exists. An annotation that is present but blank
// yields a pointer to the empty string.
func (p *Parser) textEquiv(elem *node) *string {
	for _, te := range elem.childAll(p.ns, "TextEquiv") {
		if u := te.child(p.ns, "Unicode"); u != nil {
			text := u.text
			return &text
		}
	}
	return nil
}

// lineReadingOrder extracts the reading order index from the custom
// attribute; 0 when absent or unparseable.
func lineReadingOrder(custom string) int {
	m := readingOrderRe.FindStringSubmatch(custom)
	if m == nil {
		return 0
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return idx
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseSource parses every candidate layout file of src, grouped by project.
// Unreadable, undecodable, or malformed files are logged and skipped; the
// batch always continues.
func (p *Parser) ParseSource(src source.Source) []model.Page {
	projects := GroupProjects(src.Files())

	names := make([]string, 0, len(projects))
	for name := range projects {
		names = append(names, name)
	}
	sort.Strings(names)

	var pages []model.Page
	for _, name := range names {
		files := projects[name]
		p.logger.Info("processing project", "project", name, "files", len(files))

		for _, f := range files {
			raw, err := src.Read(f)
			if err != nil {
				p.logger.Warn("skipping file: read failed", "file", f, "error", err)
				continue
			}

			// Decode logs the failure itself; no second line here.
			content, ok := Decode(raw, f, p.logger)
			if !ok {
				continue
			}

			page, err := p.ParsePage(content, name)
			if err != nil {
				p.logger.Warn("skipping file: parse failed", "file", f, "error", err)
				continue
			}
			if page != nil {
				pages = append(pages, *page)
			}
		}
	}
	return pages
}
