package api

import "github.com/mmynk/docshelf/internal/models"

// Document service

type CreateDocumentRequest struct {
	Title          string                 `json:"title"`
	Category       models.Category        `json:"category"`
	File           models.File            `json:"file"`
	OCRText        string                 `json:"ocrText"`
	Summary        string                 `json:"summary,omitempty"`
	Metadata       models.Metadata        `json:"metadata"`
	Tags           []string               `json:"tags,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
	FamilyMemberID string                 `json:"familyMemberId,omitempty"`
	AudioRecording *models.AudioRecording `json:"audioRecording,omitempty"`
}

type CreateDocumentResponse struct {
	Document *models.Document `json:"document"`
}

type GetDocumentRequest struct {
	DocumentID string `json:"documentId"`
}

type GetDocumentResponse struct {
	Document *models.Document `json:"document"`
}

type ListDocumentsRequest struct {
	// FamilyMemberID, if set, keeps only documents filed under that member.
	FamilyMemberID string `json:"familyMemberId,omitempty"`
	// Category, if set, keeps only documents of that category.
	Category models.Category `json:"category,omitempty"`
}

type ListDocumentsResponse struct {
	Documents []*models.Document `json:"documents"`
}

// UpdateDocumentRequest is a field-level update: nil fields are left alone.
// There is no way to change a document's category.
type UpdateDocumentRequest struct {
	DocumentID     string                 `json:"documentId"`
	Title          *string                `json:"title,omitempty"`
	Summary        *string                `json:"summary,omitempty"`
	Metadata       *models.Metadata       `json:"metadata,omitempty"`
	Tags           *[]string              `json:"tags,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
	FamilyMemberID *string                `json:"familyMemberId,omitempty"`
	AudioRecording *models.AudioRecording `json:"audioRecording,omitempty"`
	// RemoveAudioRecording drops the attached recording.
	RemoveAudioRecording bool `json:"removeAudioRecording,omitempty"`
}

type UpdateDocumentResponse struct {
	Document *models.Document `json:"document"`
}

type DeleteDocumentRequest struct {
	DocumentID string `json:"documentId"`
}

type DeleteDocumentResponse struct{}

// Family service

type AddFamilyMemberRequest struct {
	Name string `json:"name"`
}

type AddFamilyMemberResponse struct {
	Member *models.FamilyMember `json:"member"`
}

type ListFamilyMembersRequest struct{}

type ListFamilyMembersResponse struct {
	Members []*models.FamilyMember `json:"members"`
}

type DeleteFamilyMemberRequest struct {
	MemberID string `json:"memberId"`
}

type DeleteFamilyMemberResponse struct{}

// Settings service

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings *models.UserSettings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Currency string `json:"currency"`
}

type UpdateSettingsResponse struct {
	Settings *models.UserSettings `json:"settings"`
}

type ListCurrenciesRequest struct{}

type ListCurrenciesResponse struct {
	Currencies []models.Currency `json:"currencies"`
}

// Calendar service

type ListEventsRequest struct {
	// From and To are inclusive YYYY-MM-DD bounds; empty means open-ended.
	From  string             `json:"from,omitempty"`
	To    string             `json:"to,omitempty"`
	Types []models.EventType `json:"types,omitempty"`
}

type ListEventsResponse struct {
	Events []models.CalendarEvent `json:"events"`
}

type UpcomingEventsRequest struct {
	// Days is the horizon after today; zero uses the server default.
	Days int `json:"days,omitempty"`
}

type UpcomingEventsResponse struct {
	// Today is the server's current date in its configured timezone.
	Today  string                 `json:"today"`
	Events []models.CalendarEvent `json:"events"`
}
