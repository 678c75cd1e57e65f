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

var _ apiconnect.FamilyServiceHandler = (*FamilyService)(nil)

// FamilyService implements the Connect FamilyService
type FamilyService struct {
	store storage.Store
}

// NewFamilyService creates a new FamilyService with the given storage backend.
func NewFamilyService(store storage.Store) *FamilyService {
	return &FamilyService{store: store}
}

// AddFamilyMember creates a new family member.
func (s *FamilyService) AddFamilyMember(ctx context.Context, req *connect.Request[api.AddFamilyMemberRequest]) (*connect.Response[api.AddFamilyMemberResponse], error) {
	slog.Info("AddFamilyMember request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrNameRequired)
	}

	member := &models.FamilyMember{Name: name}
	if err := s.store.CreateFamilyMember(ctx, member); err != nil {
		slog.Error("AddFamilyMember failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Family member added", "member_id", member.ID)

	return connect.NewResponse(&api.AddFamilyMemberResponse{Member: member}), nil
}

// ListFamilyMembers retrieves all family members.
func (s *FamilyService) ListFamilyMembers(ctx context.Context, req *connect.Request[api.ListFamilyMembersRequest]) (*connect.Response[api.ListFamilyMembersResponse], error) {
	slog.Info("ListFamilyMembers request received")

	members, err := s.store.ListFamilyMembers(ctx)
	if err != nil {
		slog.Error("ListFamilyMembers failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ListFamilyMembersResponse{Members: members}), nil
}

// DeleteFamilyMember removes a member. Their documents are kept.
func (s *FamilyService) DeleteFamilyMember(ctx context.Context, req *connect.Request[api.DeleteFamilyMemberRequest]) (*connect.Response[api.DeleteFamilyMemberResponse], error) {
	slog.Info("DeleteFamilyMember request received", "member_id", req.Msg.MemberID)

	if err := s.store.DeleteFamilyMember(ctx, req.Msg.MemberID); err != nil {
		slog.Error("DeleteFamilyMember failed", "member_id", req.Msg.MemberID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Family member deleted", "member_id", req.Msg.MemberID)

	return connect.NewResponse(&api.DeleteFamilyMemberResponse{}), nil
}
