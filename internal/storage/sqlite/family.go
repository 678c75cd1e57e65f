package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/internal/storage"
)

// CreateFamilyMember inserts a new family member.
func (s *SQLiteStore) CreateFamilyMember(ctx context.Context, member *models.FamilyMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO family_members (id, name, created_at) VALUES (?, ?, ?)",
		member.ID, member.Name, member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create family member: %w", err)
	}

	return nil
}

// ListFamilyMembers retrieves all family members, oldest first.
func (s *SQLiteStore) ListFamilyMembers(ctx context.Context) ([]*models.FamilyMember, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM family_members ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	defer rows.Close()

	var members []*models.FamilyMember
	for rows.Next() {
		member := &models.FamilyMember{}
		if err := rows.Scan(&member.ID, &member.Name, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate family members: %w", err)
	}

	return members, nil
}

// DeleteFamilyMember removes a family member by ID. Documents are not touched.
func (s *SQLiteStore) DeleteFamilyMember(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM family_members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete family member: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("family member %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
