// Package export turns the current aggregated state into downloadable files.
// Unlike the gateway, encoding failures here propagate to the caller so the
// presentation layer can report them instead of shipping a corrupt file.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/miloosorio186/dashboard-tech/internal/aggregate"
	"github.com/miloosorio186/dashboard-tech/internal/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	textContentType = "text/plain; charset=utf-8"
)

// File is one named downloadable payload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// now is swapped out in tests for deterministic filenames.
var now = time.Now

func filename(subject, kind, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", subject, kind, now().Format("2006-01-02"), ext)
}

// Inventory produces a spreadsheet with one row per product, all fields.
func Inventory(products []models.Product) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inventory"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create inventory sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ID, p.Title, p.Price, p.Thumbnail, p.Category, p.Rating, p.Stock})
	}
	header := []string{"ID", "Title", "Price", "Thumbnail", "Category", "Rating", "Stock"}
	if err := writeSheet(f, sheet, header, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode inventory workbook: %w", err)
	}
	return &File{
		Name:        filename("inventory", "export", "xlsx"),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

// Transactions produces a plain text log with one line per cart.
func Transactions(carts []models.Cart) (*File, error) {
	var buf bytes.Buffer
	for _, c := range carts {
		fmt.Fprintf(&buf, "Order #%d | User: %d | Items: %d | Total: $%.2f\n",
			c.ID, c.UserID, c.TotalProducts, c.DiscountedTotal)
	}
	return &File{
		Name:        filename("transactions", "log", "txt"),
		ContentType: textContentType,
		Data:        buf.Bytes(),
	}, nil
}

// Analytics produces a two-sheet workbook: one row per cart and one row per
// category bucket. The histogram is computed over the full product
// collection, never a filtered one.
func Analytics(carts []models.Cart, products []models.Product) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	txSheet := "Transactions"
	index, err := f.NewSheet(txSheet)
	if err != nil {
		return nil, fmt.Errorf("create transactions sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	txRows := make([][]interface{}, 0, len(carts))
	for _, c := range carts {
		txRows = append(txRows, []interface{}{c.ID, c.Total, c.DiscountedTotal, c.TotalProducts})
	}
	if err := writeSheet(f, txSheet, []string{"ID", "Total", "DiscountedTotal", "TotalProducts"}, txRows); err != nil {
		return nil, err
	}

	catSheet := "Categories"
	if _, err := f.NewSheet(catSheet); err != nil {
		return nil, fmt.Errorf("create categories sheet: %w", err)
	}
	histogram := aggregate.CategoryHistogram(products)
	catRows := make([][]interface{}, 0, len(histogram))
	for _, b := range histogram {
		catRows = append(catRows, []interface{}{b.Category, b.Count})
	}
	if err := writeSheet(f, catSheet, []string{"Category", "Count"}, catRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode analytics workbook: %w", err)
	}
	return &File{
		Name:        filename("analytics", "export", "xlsx"),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}, nil
}

// writeSheet fills one sheet: bold header on row 1, one record per row after.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	for c, v := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("header cell for %s: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write header for %s: %w", sheet, err)
		}
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell for %s: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row for %s: %w", sheet, err)
			}
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style for %s: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("apply header style for %s: %w", sheet, err)
	}
	return nil
}
