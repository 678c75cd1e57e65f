package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
)

const documentColumns = `id, title, category, created_at, file_name, file_mime_type, file_data_url,
	ocr_text, summary, meta_date, meta_vendor, meta_amount, meta_policy_number,
	meta_warranty_end_date, notes, family_member_id`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// CreateDocument persists a new document with its tags and audio recording.
func (s *SQLiteStore) CreateDocument(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt == 0 {
		doc.CreatedAt = time.Now().Unix()
	}
	doc.Tags = models.NormalizeTags(doc.Tags)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (`+documentColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Title, string(doc.Category), doc.CreatedAt,
		doc.File.Name, doc.File.MimeType, doc.File.DataURL,
		doc.OCRText, nullString(doc.Summary),
		nullString(doc.Metadata.Date), nullString(doc.Metadata.Vendor), doc.Metadata.Amount,
		nullString(doc.Metadata.PolicyNumber), nullString(doc.Metadata.WarrantyEndDate),
		doc.Notes, nullString(doc.FamilyMemberID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	if err := insertChildren(ctx, tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.bump()

	return nil
}

// GetDocument retrieves a document by ID, including tags and audio recording.
func (s *SQLiteStore) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	byID := map[string]*models.Document{doc.ID: doc}
	if err := s.loadTags(ctx, byID, "SELECT document_id, tag FROM document_tags WHERE document_id = ? ORDER BY position", id); err != nil {
		return nil, err
	}
	if err := s.loadAudio(ctx, byID, "SELECT document_id, id, data_url, duration, recorded_at FROM audio_recordings WHERE document_id = ?", id); err != nil {
		return nil, err
	}

	return doc, nil
}

// ListDocuments retrieves all documents, newest first.
func (s *SQLiteStore) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM documents ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	byID := make(map[string]*models.Document)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
		byID[doc.ID] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	if len(docs) == 0 {
		return docs, nil
	}

	if err := s.loadTags(ctx, byID, "SELECT document_id, tag FROM document_tags ORDER BY document_id, position"); err != nil {
		return nil, err
	}
	if err := s.loadAudio(ctx, byID, "SELECT document_id, id, data_url, duration, recorded_at FROM audio_recordings"); err != nil {
		return nil, err
	}

	return docs, nil
}

// UpdateDocument overwrites a document's mutable fields, tags and audio recording.
func (s *SQLiteStore) UpdateDocument(ctx context.Context, doc *models.Document) error {
	doc.Tags = models.NormalizeTags(doc.Tags)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE documents SET title = ?, file_name = ?, file_mime_type = ?, file_data_url = ?,
		 ocr_text = ?, summary = ?, meta_date = ?, meta_vendor = ?, meta_amount = ?,
		 meta_policy_number = ?, meta_warranty_end_date = ?, notes = ?, family_member_id = ?
		 WHERE id = ?`,
		doc.Title, doc.File.Name, doc.File.MimeType, doc.File.DataURL,
		doc.OCRText, nullString(doc.Summary),
		nullString(doc.Metadata.Date), nullString(doc.Metadata.Vendor), doc.Metadata.Amount,
		nullString(doc.Metadata.PolicyNumber), nullString(doc.Metadata.WarrantyEndDate),
		doc.Notes, nullString(doc.FamilyMemberID),
		doc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %s: %w", doc.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM document_tags WHERE document_id = ?", doc.ID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM audio_recordings WHERE document_id = ?", doc.ID); err != nil {
		return fmt.Errorf("failed to clear audio recording: %w", err)
	}
	if err := insertChildren(ctx, tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.bump()

	return nil
}

// DeleteDocument removes a document by ID.
func (s *SQLiteStore) DeleteDocument(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM document_tags WHERE document_id = ?",
		"DELETE FROM audio_recordings WHERE document_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("failed to delete document children: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("document %s: %w", id, storage.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.bump()

	return nil
}

func insertChildren(ctx context.Context, tx *sql.Tx, doc *models.Document) error {
	for i, tag := range doc.Tags {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO document_tags (document_id, position, tag) VALUES (?, ?, ?)",
			doc.ID, i, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tag: %w", err)
		}
	}

	if rec := doc.AudioRecording; rec != nil {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if rec.Timestamp == 0 {
			rec.Timestamp = time.Now().Unix()
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO audio_recordings (id, document_id, data_url, duration, recorded_at) VALUES (?, ?, ?, ?, ?)",
			rec.ID, doc.ID, rec.DataURL, rec.Duration, rec.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("failed to insert audio recording: %w", err)
		}
	}

	return nil
}

func scanDocument(row rowScanner) (*models.Document, error) {
	doc := &models.Document{Tags: []string{}}
	var category string
	var summary, date, vendor, policy, warrantyEnd, member sql.NullString

	err := row.Scan(
		&doc.ID, &doc.Title, &category, &doc.CreatedAt,
		&doc.File.Name, &doc.File.MimeType, &doc.File.DataURL,
		&doc.OCRText, &summary,
		&date, &vendor, &doc.Metadata.Amount, &policy, &warrantyEnd,
		&doc.Notes, &member,
	)
	if err != nil {
		return nil, err
	}

	doc.Category = models.Category(category)
	doc.Summary = summary.String
	doc.Metadata.Date = date.String
	doc.Metadata.Vendor = vendor.String
	doc.Metadata.PolicyNumber = policy.String
	doc.Metadata.WarrantyEndDate = warrantyEnd.String
	doc.FamilyMemberID = member.String

	return doc, nil
}

func (s *SQLiteStore) loadTags(ctx context.Context, byID map[string]*models.Document, query string, args ...interface{}) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docID, tag string
		if err := rows.Scan(&docID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if doc, ok := byID[docID]; ok {
			doc.Tags = append(doc.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate tags: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadAudio(ctx context.Context, byID map[string]*models.Document, query string, args ...interface{}) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to get audio recordings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docID string
		rec := &models.AudioRecording{}
		if err := rows.Scan(&docID, &rec.ID, &rec.DataURL, &rec.Duration, &rec.Timestamp); err != nil {
			return fmt.Errorf("failed to scan audio recording: %w", err)
		}
		if doc, ok := byID[docID]; ok {
			doc.AudioRecording = rec
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate audio recordings: %w", err)
	}
	return nil
}
