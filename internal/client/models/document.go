package models

import "time"

// DocumentOwner references the user a document belongs to. The backend
// exposes the raw id under "_id".
type DocumentOwner struct {
	ID string `json:"_id"`
}

// Document is a server-owned uploaded file record.
type Document struct {
	ID         string        `json:"_id,omitempty"`
	Filename   string        `json:"filename"`
	UploadedAt time.Time     `json:"uploadedAt"`
	URL        string        `json:"url,omitempty"`
	User       DocumentOwner `json:"user"`
}

// OwnedBy reports whether the document belongs to the given user id.
func (d *Document) OwnedBy(userID string) bool {
	return userID != "" && d.User.ID == userID
}
