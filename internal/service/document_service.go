package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
	"github.com/mmynk/docshelf/pkg/api"
	"github.com/mmynk/docshelf/pkg/api/apiconnect"
)

var _ apiconnect.DocumentServiceHandler = (*DocumentService)(nil)

// DocumentService implements the Connect DocumentService
type DocumentService struct {
	store storage.Store
}

// NewDocumentService creates a new DocumentService with the given storage backend.
func NewDocumentService(store storage.Store) *DocumentService {
	return &DocumentService{store: store}
}

// CreateDocument stores a captured document.
func (s *DocumentService) CreateDocument(ctx context.Context, req *connect.Request[api.CreateDocumentRequest]) (*connect.Response[api.CreateDocumentResponse], error) {
	msg := req.Msg
	slog.Info("CreateDocument request received",
		"title", msg.Title,
		"category", msg.Category,
		"tags_count", len(msg.Tags),
	)

	if strings.TrimSpace(msg.Title) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrTitleRequired)
	}
	if err := validateMetadata(msg.Metadata); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err := validateAudio(msg.AudioRecording); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !msg.Category.Known() {
		slog.Warn("CreateDocument with unrecognized category", "category", msg.Category)
	}

	doc := &models.Document{
		Title:          msg.Title,
		Category:       msg.Category,
		File:           msg.File,
		OCRText:        msg.OCRText,
		Summary:        msg.Summary,
		Metadata:       msg.Metadata,
		Tags:           msg.Tags,
		Notes:          msg.Notes,
		FamilyMemberID: msg.FamilyMemberID,
		AudioRecording: msg.AudioRecording,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateDocument(ctx, doc); err != nil {
		slog.Error("CreateDocument failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Document created", "document_id", doc.ID)

	return connect.NewResponse(&api.CreateDocumentResponse{Document: doc}), nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentService) GetDocument(ctx context.Context, req *connect.Request[api.GetDocumentRequest]) (*connect.Response[api.GetDocumentResponse], error) {
	slog.Info("GetDocument request received", "document_id", req.Msg.DocumentID)

	doc, err := s.store.GetDocument(ctx, req.Msg.DocumentID)
	if err != nil {
		slog.Error("GetDocument failed", "document_id", req.Msg.DocumentID, "error", err)
		return nil, storeError(err)
	}

	return connect.NewResponse(&api.GetDocumentResponse{Document: doc}), nil
}

// ListDocuments returns documents newest first, optionally narrowed by
// family member or category.
func (s *DocumentService) ListDocuments(ctx context.Context, req *connect.Request[api.ListDocumentsRequest]) (*connect.Response[api.ListDocumentsResponse], error) {
	slog.Info("ListDocuments request received",
		"family_member_id", req.Msg.FamilyMemberID,
		"category", req.Msg.Category,
	)

	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		slog.Error("ListDocuments failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	filtered := make([]*models.Document, 0, len(docs))
	for _, doc := range docs {
		if req.Msg.FamilyMemberID != "" && doc.FamilyMemberID != req.Msg.FamilyMemberID {
			continue
		}
		if req.Msg.Category != "" && doc.Category != req.Msg.Category {
			continue
		}
		filtered = append(filtered, doc)
	}

	slog.Info("ListDocuments successful", "count", len(filtered))

	return connect.NewResponse(&api.ListDocumentsResponse{Documents: filtered}), nil
}

// UpdateDocument applies a field-level update. Category cannot change.
func (s *DocumentService) UpdateDocument(ctx context.Context, req *connect.Request[api.UpdateDocumentRequest]) (*connect.Response[api.UpdateDocumentResponse], error) {
	msg := req.Msg
	slog.Info("UpdateDocument request received", "document_id", msg.DocumentID)

	doc, err := s.store.GetDocument(ctx, msg.DocumentID)
	if err != nil {
		slog.Error("UpdateDocument failed - could not get document", "document_id", msg.DocumentID, "error", err)
		return nil, storeError(err)
	}

	if msg.Title != nil {
		if strings.TrimSpace(*msg.Title) == "" {
			return nil, connect.NewError(connect.CodeInvalidArgument, ErrTitleRequired)
		}
		doc.Title = *msg.Title
	}
	if msg.Summary != nil {
		doc.Summary = *msg.Summary
	}
	if msg.Metadata != nil {
		if err := validateMetadata(*msg.Metadata); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		doc.Metadata = *msg.Metadata
	}
	if msg.Tags != nil {
		doc.Tags = *msg.Tags
	}
	if msg.Notes != nil {
		doc.Notes = *msg.Notes
	}
	if msg.FamilyMemberID != nil {
		doc.FamilyMemberID = *msg.FamilyMemberID
	}
	switch {
	case msg.RemoveAudioRecording:
		doc.AudioRecording = nil
	case msg.AudioRecording != nil:
		if err := validateAudio(msg.AudioRecording); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		doc.AudioRecording = msg.AudioRecording
	}

	if err := s.store.UpdateDocument(ctx, doc); err != nil {
		slog.Error("UpdateDocument failed", "document_id", doc.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Document updated", "document_id", doc.ID)

	return connect.NewResponse(&api.UpdateDocumentResponse{Document: doc}), nil
}

// DeleteDocument removes a document by ID.
func (s *DocumentService) DeleteDocument(ctx context.Context, req *connect.Request[api.DeleteDocumentRequest]) (*connect.Response[api.DeleteDocumentResponse], error) {
	slog.Info("DeleteDocument request received", "document_id", req.Msg.DocumentID)

	if err := s.store.DeleteDocument(ctx, req.Msg.DocumentID); err != nil {
		slog.Error("DeleteDocument failed", "document_id", req.Msg.DocumentID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Document deleted", "document_id", req.Msg.DocumentID)

	return connect.NewResponse(&api.DeleteDocumentResponse{}), nil
}
