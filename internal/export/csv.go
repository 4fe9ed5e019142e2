package export

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

// WriteCSV writes the prospect list to a CSV file at path.
func WriteCSV(path string, companies []model.Company) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, row := range Rows(companies) {
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return eris.Wrapf(f.Close(), "export: close %s", path)
}
