// Package export writes the document collection as an Excel workbook.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/docshelf/internal/models"
)

// SheetName is the worksheet holding one row per document.
const SheetName = "Documents"

// Header lists the exported columns in order.
var Header = []string{
	"Title",
	"Category",
	"Date",
	"Vendor",
	"Amount",
	"Policy Number",
	"Warranty End",
	"Family Member",
	"Tags",
	"Created",
}

var columnWidths = []float64{30, 18, 12, 20, 14, 18, 14, 18, 25, 18}

// Source is the read side of the store needed for an export.
type Source interface {
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	ListFamilyMembers(ctx context.Context) ([]*models.FamilyMember, error)
	GetSettings(ctx context.Context) (*models.UserSettings, error)
}

// WriteDocuments writes docs to w as an xlsx workbook. Amounts are prefixed
// with the symbol of the settings currency; member ids that no longer
// resolve export as an empty Family Member cell.
func WriteDocuments(w io.Writer, docs []*models.Document, members []*models.FamilyMember, settings *models.UserSettings) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	symbol := currencySymbol(settings)

	for i, doc := range docs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := documentRow(doc, names, symbol)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for document %s: %w", doc.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func documentRow(doc *models.Document, names map[string]string, symbol string) []any {
	amount := ""
	if doc.Metadata.Amount.Valid {
		amount = symbol + doc.Metadata.Amount.Decimal.StringFixed(2)
	}
	return []any{
		doc.Title,
		string(doc.Category),
		doc.Metadata.Date,
		doc.Metadata.Vendor,
		amount,
		doc.Metadata.PolicyNumber,
		doc.Metadata.WarrantyEndDate,
		names[doc.FamilyMemberID],
		strings.Join(doc.Tags, ", "),
		time.Unix(doc.CreatedAt, 0).UTC().Format("2006-01-02 15:04"),
	}
}

func currencySymbol(settings *models.UserSettings) string {
	code := models.DefaultCurrency
	if settings != nil {
		code = settings.Currency
	}
	if c, ok := models.LookupCurrency(code); ok {
		return c.Symbol
	}
	return ""
}

// Handler serves the workbook for every document in src.
func Handler(src Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		docs, err := src.ListDocuments(ctx)
		if err != nil {
			slog.Error("Export failed to list documents", "error", err)
			http.Error(w, "failed to export documents", http.StatusInternalServerError)
			return
		}
		members, err := src.ListFamilyMembers(ctx)
		if err != nil {
			slog.Error("Export failed to list family members", "error", err)
			http.Error(w, "failed to export documents", http.StatusInternalServerError)
			return
		}
		settings, err := src.GetSettings(ctx)
		if err != nil {
			slog.Error("Export failed to load settings", "error", err)
			http.Error(w, "failed to export documents", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="documents.xlsx"`)
		if err := WriteDocuments(w, docs, members, settings); err != nil {
			slog.Error("Export failed", "error", err)
			return
		}
		slog.Info("Documents exported", "count", len(docs))
	})
}
