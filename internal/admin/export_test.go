package admin

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kuberbiotech/kuber-web/internal/contact"
	"github.com/kuberbiotech/kuber-web/internal/content"
	"github.com/kuberbiotech/kuber-web/internal/language"
)

func TestContactsXLSX(t *testing.T) {
	subs := []contact.Submission{
		{ID: "c1", Name: "Test User", Email: "test@example.com", Message: "Hello", CreatedAt: "2025-03-04T05:06:00Z"},
		{ID: "c2", Name: "Ravi", Phone: "9850244123", Message: "Call me"},
	}
	data, err := ContactsXLSX(subs, content.Resolve(language.Marathi))
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "संपर्क" {
		t.Fatalf("unexpected sheets %v", sheets)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if rows[0][0] != "नाव" {
		t.Fatalf("header must be localized, got %v", rows[0])
	}
	if rows[1][0] != "Test User" || rows[1][4] != "2025-03-04 05:06" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[2][2] != "9850244123" {
		t.Fatalf("unexpected second row %v", rows[2])
	}
}
