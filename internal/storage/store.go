// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/docshelf/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for document, family member and settings storage.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateDocument persists a new document.
	// ID, CreatedAt and the audio recording ID are populated if empty.
	CreateDocument(ctx context.Context, doc *models.Document) error

	// GetDocument retrieves a document by its ID.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocuments returns every document, newest first.
	ListDocuments(ctx context.Context) ([]*models.Document, error)

	// UpdateDocument replaces a stored document's mutable fields.
	// Category and CreatedAt are never changed.
	UpdateDocument(ctx context.Context, doc *models.Document) error

	// DeleteDocument removes a document and its tags and audio recording.
	DeleteDocument(ctx context.Context, id string) error

	// CreateFamilyMember persists a new member, populating ID and CreatedAt.
	CreateFamilyMember(ctx context.Context, member *models.FamilyMember) error

	// ListFamilyMembers returns members in the order they were added.
	ListFamilyMembers(ctx context.Context) ([]*models.FamilyMember, error)

	// DeleteFamilyMember removes a member. Documents filed under the member
	// keep their (now dangling) FamilyMemberID.
	DeleteFamilyMember(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, settings *models.UserSettings) error

	// Revision identifies the current document collection. It changes
	// after every successful document mutation.
	Revision() uint64

	// Close releases any resources held by the store.
	Close() error
}
