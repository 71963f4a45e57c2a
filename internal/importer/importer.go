package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"orderdesk/internal/domain"
)

type ProductWriter interface {
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter reads flat catalog exports and inserts products. Expected
// headers: name, description, price, sku, image, published. Price is in
// decimal currency units ("19.99") and stored as cents.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and inserts one product per row. Rows without a name
// are skipped. Returns the number of products written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required header: name")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, ok, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+1, err)
		}
		if !ok {
			continue
		}

		if _, err := i.productRepo.Insert(ctx, p); err != nil {
			return imported, fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, bool, error) {
	get := func(key string) string {
		i, ok := index[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := get("name")
	if name == "" {
		return domain.Product{}, false, nil
	}

	p := domain.Product{
		Name:        name,
		Published:   true,
		Description: get("description"),
		VariantSKU:  get("sku"),
		ImageSrc:    get("image"),
	}

	if raw := get("price"); raw != "" {
		cents, err := parsePriceCents(raw)
		if err != nil {
			return domain.Product{}, false, err
		}
		p.PriceCents = cents
	}

	if raw := get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Product{}, false, fmt.Errorf("parse published %q: %w", raw, err)
		}
		p.Published = published
	}

	return p, true, nil
}

func parsePriceCents(raw string) (int64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	return int64(math.Round(value * 100)), nil
}
