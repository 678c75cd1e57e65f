package models

// SelfMemberID is the id of the family member seeded on first run.
const SelfMemberID = "self"

// FamilyMember is a person documents can be filed under.
type FamilyMember struct {
	// ID is the unique identifier for the member (UUID format, or "self").
	ID string `json:"id"`

	// Name is the display name (e.g., "Self", "Mom").
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the member was added.
	CreatedAt int64 `json:"createdAt"`
}
