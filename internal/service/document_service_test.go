package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/pkg/api"
)

func createDoc(t *testing.T, c *testClients, req *api.CreateDocumentRequest) *models.Document {
	t.Helper()
	resp, err := c.documents.CreateDocument(context.Background(), connect.NewRequest(req))
	if err != nil {
		t.Fatalf("CreateDocument failed: %v", err)
	}
	return resp.Msg.Document
}

func TestCreateAndGetDocument(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	created := createDoc(t, c, &api.CreateDocumentRequest{
		Title:    "Fridge",
		Category: models.CategoryWarranty,
		File:     models.File{Name: "fridge.jpg", MimeType: "image/jpeg", DataURL: "data:image/jpeg;base64,AAAA"},
		OCRText:  "Cool Co. invoice",
		Metadata: models.Metadata{
			Date:            "2024-03-01",
			Vendor:          "Cool Co.",
			Amount:          decimal.NewNullDecimal(decimal.RequireFromString("45999.00")),
			WarrantyEndDate: "2026-03-01",
		},
		Tags:           []string{"kitchen", "kitchen", "appliance"},
		FamilyMemberID: models.SelfMemberID,
		AudioRecording: &models.AudioRecording{DataURL: "data:audio/webm;base64,BBBB", Duration: 3.5},
	})

	if created.ID == "" {
		t.Fatal("expected generated ID")
	}
	if created.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}

	resp, err := c.documents.GetDocument(context.Background(), connect.NewRequest(&api.GetDocumentRequest{DocumentID: created.ID}))
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	got := resp.Msg.Document

	if got.Title != "Fridge" || got.Category != models.CategoryWarranty {
		t.Errorf("unexpected document: %+v", got)
	}
	if !got.Metadata.Amount.Valid || !got.Metadata.Amount.Decimal.Equal(decimal.RequireFromString("45999")) {
		t.Errorf("expected amount 45999, got %v", got.Metadata.Amount)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "kitchen" || got.Tags[1] != "appliance" {
		t.Errorf("expected de-duplicated tags, got %v", got.Tags)
	}
	if got.AudioRecording == nil || got.AudioRecording.Duration != 3.5 || got.AudioRecording.ID == "" {
		t.Errorf("unexpected audio recording: %+v", got.AudioRecording)
	}
}

func TestCreateDocumentValidation(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name string
		req  *api.CreateDocumentRequest
	}{
		{"blank title", &api.CreateDocumentRequest{Title: "  "}},
		{"negative amount", &api.CreateDocumentRequest{
			Title:    "Refund",
			Metadata: models.Metadata{Amount: decimal.NewNullDecimal(decimal.NewFromInt(-5))},
		}},
		{"malformed date", &api.CreateDocumentRequest{
			Title:    "Bill",
			Metadata: models.Metadata{Date: "03/01/2024"},
		}},
		{"impossible warranty end", &api.CreateDocumentRequest{
			Title:    "TV",
			Metadata: models.Metadata{WarrantyEndDate: "2025-02-30"},
		}},
		{"negative audio duration", &api.CreateDocumentRequest{
			Title:          "Memo",
			AudioRecording: &models.AudioRecording{Duration: -1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.documents.CreateDocument(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestCreateDocumentZeroAmountAllowed(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	doc := createDoc(t, c, &api.CreateDocumentRequest{
		Title:    "Free checkup",
		Category: models.CategoryMedicalReceipt,
		Metadata: models.Metadata{Amount: decimal.NewNullDecimal(decimal.Zero)},
	})
	if !doc.Metadata.Amount.Valid || !doc.Metadata.Amount.Decimal.IsZero() {
		t.Errorf("expected zero amount, got %v", doc.Metadata.Amount)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := c.documents.GetDocument(context.Background(), connect.NewRequest(&api.GetDocumentRequest{DocumentID: "missing"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListDocumentsFilters(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	createDoc(t, c, &api.CreateDocumentRequest{Title: "Power", Category: models.CategoryUtilityBill, FamilyMemberID: models.SelfMemberID})
	createDoc(t, c, &api.CreateDocumentRequest{Title: "Checkup", Category: models.CategoryMedicalRecord, FamilyMemberID: "kid"})
	createDoc(t, c, &api.CreateDocumentRequest{Title: "Water", Category: models.CategoryUtilityBill, FamilyMemberID: "kid"})

	tests := []struct {
		name string
		req  *api.ListDocumentsRequest
		want int
	}{
		{"all", &api.ListDocumentsRequest{}, 3},
		{"by member", &api.ListDocumentsRequest{FamilyMemberID: "kid"}, 2},
		{"by category", &api.ListDocumentsRequest{Category: models.CategoryUtilityBill}, 2},
		{"both", &api.ListDocumentsRequest{FamilyMemberID: "kid", Category: models.CategoryUtilityBill}, 1},
		{"none", &api.ListDocumentsRequest{Category: models.CategoryWarranty}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.documents.ListDocuments(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("ListDocuments failed: %v", err)
			}
			if len(resp.Msg.Documents) != tt.want {
				t.Errorf("expected %d documents, got %d", tt.want, len(resp.Msg.Documents))
			}
		})
	}
}

func TestUpdateDocument(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	doc := createDoc(t, c, &api.CreateDocumentRequest{
		Title:          "Policy",
		Category:       models.CategoryInsurancePolicy,
		Notes:          "original notes",
		Metadata:       models.Metadata{Date: "2024-05-01", PolicyNumber: "P-1"},
		AudioRecording: &models.AudioRecording{DataURL: "data:audio/webm;base64,CC", Duration: 2},
	})

	title := "Car policy"
	tags := []string{"car"}
	resp, err := c.documents.UpdateDocument(context.Background(), connect.NewRequest(&api.UpdateDocumentRequest{
		DocumentID:           doc.ID,
		Title:                &title,
		Tags:                 &tags,
		Metadata:             &models.Metadata{Date: "2024-06-01", PolicyNumber: "P-2"},
		RemoveAudioRecording: true,
	}))
	if err != nil {
		t.Fatalf("UpdateDocument failed: %v", err)
	}
	updated := resp.Msg.Document

	if updated.Title != "Car policy" {
		t.Errorf("expected new title, got %q", updated.Title)
	}
	if updated.Notes != "original notes" {
		t.Errorf("notes should be untouched, got %q", updated.Notes)
	}
	if updated.Category != models.CategoryInsurancePolicy {
		t.Errorf("category changed to %q", updated.Category)
	}
	if updated.CreatedAt != doc.CreatedAt {
		t.Errorf("createdAt changed from %d to %d", doc.CreatedAt, updated.CreatedAt)
	}

	got, err := c.documents.GetDocument(context.Background(), connect.NewRequest(&api.GetDocumentRequest{DocumentID: doc.ID}))
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.Msg.Document.Metadata.PolicyNumber != "P-2" {
		t.Errorf("expected policy P-2, got %q", got.Msg.Document.Metadata.PolicyNumber)
	}
	if got.Msg.Document.AudioRecording != nil {
		t.Errorf("expected audio to be removed, got %+v", got.Msg.Document.AudioRecording)
	}
	if len(got.Msg.Document.Tags) != 1 || got.Msg.Document.Tags[0] != "car" {
		t.Errorf("expected tags [car], got %v", got.Msg.Document.Tags)
	}
}

func TestUpdateDocumentErrors(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	doc := createDoc(t, c, &api.CreateDocumentRequest{Title: "Receipt", Category: models.CategoryGeneralReceipt})

	title := "Anything"
	_, err := c.documents.UpdateDocument(context.Background(), connect.NewRequest(&api.UpdateDocumentRequest{
		DocumentID: "missing",
		Title:      &title,
	}))
	assertCode(t, err, connect.CodeNotFound)

	blank := ""
	_, err = c.documents.UpdateDocument(context.Background(), connect.NewRequest(&api.UpdateDocumentRequest{
		DocumentID: doc.ID,
		Title:      &blank,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.documents.UpdateDocument(context.Background(), connect.NewRequest(&api.UpdateDocumentRequest{
		DocumentID: doc.ID,
		Metadata:   &models.Metadata{Date: "2024-13-01"},
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteDocument(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	doc := createDoc(t, c, &api.CreateDocumentRequest{Title: "Old bill", Category: models.CategoryUtilityBill})

	if _, err := c.documents.DeleteDocument(context.Background(), connect.NewRequest(&api.DeleteDocumentRequest{DocumentID: doc.ID})); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}

	_, err := c.documents.GetDocument(context.Background(), connect.NewRequest(&api.GetDocumentRequest{DocumentID: doc.ID}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.documents.DeleteDocument(context.Background(), connect.NewRequest(&api.DeleteDocumentRequest{DocumentID: doc.ID}))
	assertCode(t, err, connect.CodeNotFound)
}
