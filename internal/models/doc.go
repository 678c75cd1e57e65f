// Package models defines the core domain models for docshelf.
//
// # Models
//
//   - Document: a scanned household document with extracted metadata
//   - FamilyMember: a person documents can be filed under
//   - UserSettings: process-wide preferences (display currency)
//   - CalendarEvent: an actionable date derived from a document's metadata
//
// # Design Principles
//
// 1. **Plain values**: models carry no behavior beyond small predicates
// 2. **Weak references**: relationships use ID strings, never pointers.
// Document.FamilyMemberID and CalendarEvent.DocumentID may dangle
// 3. **Partial metadata**: OCR extraction is imperfect, so every metadata
// field is optional and the zero value means "absent"
// 4. **Derived, not stored**: calendar events are recomputed from documents
// and never persisted
package models
