package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry with an external demo video. TechStack is
// ordered and may contain duplicates; the validator only requires at least
// one non-empty entry.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoID     string    `json:"videoId"`
	TechStack   []string  `json:"techStack"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectInput is the payload accepted when creating a project.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoID     string   `json:"videoId"`
	TechStack   []string `json:"techStack"`
	DemoURL     string   `json:"demoUrl"`
	GithubURL   string   `json:"githubUrl"`
	Featured    *bool    `json:"featured"`
	Published   *bool    `json:"published"`
}

// ProjectPatch carries a partial update; only non-nil fields are applied.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoID     *string   `json:"videoId"`
	TechStack   *[]string `json:"techStack"`
	DemoURL     *string   `json:"demoUrl"`
	GithubURL   *string   `json:"githubUrl"`
	Featured    *bool     `json:"featured"`
	Published   *bool     `json:"published"`
}

// Apply merges the patch onto p, leaving ID and CreatedAt untouched.
func (patch *ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.VideoID != nil {
		p.VideoID = *patch.VideoID
	}
	if patch.TechStack != nil {
		p.TechStack = *patch.TechStack
	}
	if patch.DemoURL != nil {
		p.DemoURL = *patch.DemoURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Published != nil {
		p.Published = *patch.Published
	}
}
