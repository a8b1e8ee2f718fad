package model

import "time"

// Upload is a generic media record, scoped to one admin. StorageKey is
// the blob-store deletion handle.
type Upload struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"-"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	StorageKey string    `json:"-"`
	Folder     string    `json:"folder"`
	SizeBytes  int64     `json:"size_bytes"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}
