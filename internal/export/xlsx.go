package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/prospect-cli/internal/model"
)

const sheetName = "Prospects"

// WriteXLSX writes the prospect list to an XLSX workbook at path.
func WriteXLSX(path string, companies []model.Company) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, col := range header {
		cell := headerRow.AddCell()
		cell.Value = col
	}

	for _, row := range Rows(companies) {
		r := sheet.AddRow()
		for _, val := range row {
			cell := r.AddCell()
			cell.Value = val
		}
	}

	return eris.Wrapf(f.Save(path), "export: save %s", path)
}
