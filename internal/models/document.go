package models

import "github.com/shopspring/decimal"

// Category classifies a document and selects the date rule used to derive
// its calendar event.
type Category string

const (
	CategoryWarranty        Category = "Warranty"
	CategoryUtilityBill     Category = "Utility Bill"
	CategoryMedicalReceipt  Category = "Medical Receipt"
	CategoryMedicalRecord   Category = "Medical Record"
	CategoryInsurancePolicy Category = "Insurance Policy"
	CategoryGeneralReceipt  Category = "General Receipt"
	CategoryOther           Category = "Other"
)

// Categories lists every recognized category in display order.
var Categories = []Category{
	CategoryWarranty,
	CategoryUtilityBill,
	CategoryMedicalReceipt,
	CategoryMedicalRecord,
	CategoryInsurancePolicy,
	CategoryGeneralReceipt,
	CategoryOther,
}

// Known reports whether c is one of the recognized categories.
// Unknown categories are still stored; they just get the generic date rule.
func (c Category) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Document represents a stored household document.
type Document struct {
	// ID is the unique identifier for the document (UUID format).
	ID string `json:"id"`

	// Title is the user-visible name (e.g., "Washing machine", "Electricity March").
	Title string `json:"title"`

	// Category is fixed at creation; no update path changes it.
	Category Category `json:"category"`

	// CreatedAt is the Unix timestamp when the document was captured.
	CreatedAt int64 `json:"createdAt"`

	// File is the scanned original, passed through unchanged.
	File File `json:"file"`

	// OCRText is the raw text extracted from the file.
	OCRText string `json:"ocrText"`

	// Summary is an optional short description produced at capture time.
	Summary string `json:"summary,omitempty"`

	// Metadata holds the fields extracted from the document. Any may be absent.
	Metadata Metadata `json:"metadata"`

	// Tags is a set of free-form labels. Order is kept, duplicates are not.
	Tags []string `json:"tags"`

	Notes string `json:"notes"`

	// FamilyMemberID optionally files the document under a family member.
	// It is a weak reference: deleting the member leaves it dangling.
	FamilyMemberID string `json:"familyMemberId,omitempty"`

	// AudioRecording is an optional voice note owned by this document.
	AudioRecording *AudioRecording `json:"audioRecording,omitempty"`
}

// File is an opaque attachment stored as a data URL.
type File struct {
	Name     string `json:"name"`
	MimeType string `json:"type"`
	DataURL  string `json:"dataUrl"`
}

// Metadata is the partial set of fields extracted from a document.
// Empty strings and an invalid Amount mean the field is absent.
type Metadata struct {
	// Date is the document's primary date as YYYY-MM-DD (calendar-local, no time).
	Date string `json:"date,omitempty"`

	Vendor string `json:"vendor,omitempty"`

	// Amount, when valid, is non-negative.
	Amount decimal.NullDecimal `json:"amount"`

	PolicyNumber string `json:"policyNumber,omitempty"`

	// WarrantyEndDate is the YYYY-MM-DD day a warranty runs out.
	WarrantyEndDate string `json:"warrantyEndDate,omitempty"`
}

// AudioRecording is a voice note attached to a document.
type AudioRecording struct {
	ID      string `json:"id"`
	DataURL string `json:"dataUrl"`

	// Duration is the length of the recording in seconds.
	Duration float64 `json:"duration"`

	// Timestamp is the Unix timestamp when the note was recorded.
	Timestamp int64 `json:"timestamp"`
}

// NormalizeTags returns tags with blanks and duplicates removed, keeping the
// first occurrence of each.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
