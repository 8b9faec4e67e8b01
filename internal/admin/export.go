package admin

import (
	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/kuberbiotech/kuber-web/internal/contact"
	"github.com/kuberbiotech/kuber-web/internal/content"
)

const exportTimeLayout = "2006-01-02 15:04"

// ContactsXLSX writes the submissions to a single-sheet workbook with a
// header row in the tree's language.
func ContactsXLSX(subs []contact.Submission, tree content.Tree) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := tree.Admin.Tabs.Contacts
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, "name sheet")
	}
	header := []interface{}{
		tree.Admin.ContactName,
		tree.Admin.ContactEmail,
		tree.Admin.ContactPhone,
		tree.Admin.ContactMessage,
		tree.Admin.ContactDate,
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "header style")
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", bold); err != nil {
		return nil, errors.Wrap(err, "apply header style")
	}

	for i, s := range subs {
		date := ""
		if t := s.Created(); !t.IsZero() {
			date = t.Format(exportTimeLayout)
		}
		row := []interface{}{s.Name, s.Email, s.Phone, s.Message, date}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row %d", i+2)
		}
	}
	if err := f.SetColWidth(sheet, "A", "C", 24); err != nil {
		return nil, errors.Wrap(err, "column width")
	}
	if err := f.SetColWidth(sheet, "D", "D", 60); err != nil {
		return nil, errors.Wrap(err, "column width")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
