package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/docshelf/internal/models"
	"github.com/mmynk/docshelf/pkg/api"
)

func TestFamilyMembers(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	resp, err := c.family.ListFamilyMembers(ctx, connect.NewRequest(&api.ListFamilyMembersRequest{}))
	if err != nil {
		t.Fatalf("ListFamilyMembers failed: %v", err)
	}
	if len(resp.Msg.Members) != 1 || resp.Msg.Members[0].ID != models.SelfMemberID {
		t.Fatalf("expected seeded self member, got %+v", resp.Msg.Members)
	}

	added, err := c.family.AddFamilyMember(ctx, connect.NewRequest(&api.AddFamilyMemberRequest{Name: "  Mom  "}))
	if err != nil {
		t.Fatalf("AddFamilyMember failed: %v", err)
	}
	mom := added.Msg.Member
	if mom.ID == "" || mom.Name != "Mom" {
		t.Errorf("unexpected member: %+v", mom)
	}

	resp, err = c.family.ListFamilyMembers(ctx, connect.NewRequest(&api.ListFamilyMembersRequest{}))
	if err != nil {
		t.Fatalf("ListFamilyMembers failed: %v", err)
	}
	if len(resp.Msg.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(resp.Msg.Members))
	}

	if _, err := c.family.DeleteFamilyMember(ctx, connect.NewRequest(&api.DeleteFamilyMemberRequest{MemberID: mom.ID})); err != nil {
		t.Fatalf("DeleteFamilyMember failed: %v", err)
	}
	_, err = c.family.DeleteFamilyMember(ctx, connect.NewRequest(&api.DeleteFamilyMemberRequest{MemberID: mom.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestAddFamilyMemberRequiresName(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()

	_, err := c.family.AddFamilyMember(context.Background(), connect.NewRequest(&api.AddFamilyMemberRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteFamilyMemberKeepsDocuments(t *testing.T) {
	c, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	added, err := c.family.AddFamilyMember(ctx, connect.NewRequest(&api.AddFamilyMemberRequest{Name: "Dad"}))
	if err != nil {
		t.Fatalf("AddFamilyMember failed: %v", err)
	}
	dadID := added.Msg.Member.ID

	doc := createDoc(t, c, &api.CreateDocumentRequest{
		Title:          "Blood test",
		Category:       models.CategoryMedicalRecord,
		FamilyMemberID: dadID,
	})

	if _, err := c.family.DeleteFamilyMember(ctx, connect.NewRequest(&api.DeleteFamilyMemberRequest{MemberID: dadID})); err != nil {
		t.Fatalf("DeleteFamilyMember failed: %v", err)
	}

	got, err := c.documents.GetDocument(ctx, connect.NewRequest(&api.GetDocumentRequest{DocumentID: doc.ID}))
	if err != nil {
		t.Fatalf("document should survive member deletion: %v", err)
	}
	if got.Msg.Document.FamilyMemberID != dadID {
		t.Errorf("expected dangling member id %q, got %q", dadID, got.Msg.Document.FamilyMemberID)
	}
}
