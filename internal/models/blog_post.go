package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a single article on the public blog. Content may embed raw
// markup; rendering is the read path's concern, not the store's.
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	ReadTime  string    `json:"readTime"`
	Featured  bool      `json:"featured"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPostInput is the payload accepted when creating a post. ID and
// CreatedAt are assigned by the store and never client-supplied.
// Featured and Published are pointers so a missing value can be coerced
// to its documented default (false and true respectively).
type BlogPostInput struct {
	Title     string  `json:"title"`
	Excerpt   string  `json:"excerpt"`
	Content   string  `json:"content"`
	ImageURL  string  `json:"imageUrl"`
	Category  string  `json:"category"`
	ReadTime  string  `json:"readTime"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
}

// BlogPostPatch carries a partial update. Only non-nil fields are applied.
// ID and CreatedAt are deliberately absent: attempts to set them in a
// request body are silently ignored rather than rejected.
type BlogPostPatch struct {
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Category  *string `json:"category"`
	ReadTime  *string `json:"readTime"`
	Featured  *bool   `json:"featured"`
	Published *bool   `json:"published"`
}

// Apply merges the patch onto p, leaving ID and CreatedAt untouched.
func (patch *BlogPostPatch) Apply(p *BlogPost) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ReadTime != nil {
		p.ReadTime = *patch.ReadTime
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
}
