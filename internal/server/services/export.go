package services

import (
	"io"
	"strconv"

	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/tealeg/xlsx"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeaders = []string{"ID", "Name", "Category", "Sub Category", "Description", "Image", "Created At", "Last Update"}

// WriteProductsXLSX writes products as a single-sheet spreadsheet.
func WriteProductsXLSX(w io.Writer, products []*models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(strconv.FormatInt(p.ID, 10))
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.CategoryName)
		row.AddCell().SetValue(p.SubCategoryName)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.CreatedAt.Format(exportTimeLayout))
		row.AddCell().SetValue(p.LastUpdate.Format(exportTimeLayout))
	}

	return file.Write(w)
}
