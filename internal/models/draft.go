package models

import (
	"time"
)

// Draft is the form state kept across page navigation
type Draft struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	IsDraft   bool       `json:"isDraft"`
	LastSaved *time.Time `json:"lastSaved"`
}

// FormPatch updates the fields that are set; nil fields are left untouched
type FormPatch struct {
	Title    *string  `json:"title,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p FormPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Category == nil && p.Tags == nil
}

// ContentStats summarizes draft text for the editor footer
type ContentStats struct {
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Lines      int    `json:"lines"`
	Preview    string `json:"preview"`
}
