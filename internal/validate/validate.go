// Package validate holds the single rule set consulted before any store
// mutation. Each entry point checks a full create payload or a partial
// update and returns every field error at once, so a form can render all
// of its problems in one pass instead of one per submit.
package validate

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"devfolio/internal/models"
)

// Length limits for the three entity kinds.
const (
	minNameLen    = 2
	minMessageLen = 10

	maxTitleLen   = 300
	maxExcerptLen = 1_000
	maxContentLen = 100_000
)

// FieldError describes a single rejected field. Message is written for
// direct display next to the offending form input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BlogPost normalizes and validates a creation payload in place: strings
// are trimmed and missing booleans coerced to their defaults (featured
// false, published true). Returns nil when the payload is acceptable.
func BlogPost(in *models.BlogPostInput) []FieldError {
	var errs []FieldError

	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Content = strings.TrimSpace(in.Content)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Category = strings.TrimSpace(in.Category)
	in.ReadTime = strings.TrimSpace(in.ReadTime)

	errs = appendRequired(errs, "title", in.Title, "Title is required.")
	errs = appendRequired(errs, "excerpt", in.Excerpt, "Excerpt is required.")
	errs = appendRequired(errs, "content", in.Content, "Content is required.")
	errs = appendRequired(errs, "category", in.Category, "Category is required.")
	errs = appendRequired(errs, "readTime", in.ReadTime, "Read time is required.")
	errs = appendLengthCaps(errs, in.Title, in.Excerpt, in.Content)

	if !isAbsoluteURL(in.ImageURL) {
		errs = append(errs, FieldError{"imageUrl", "Image URL must be an absolute URL."})
	}

	if in.Featured == nil {
		in.Featured = boolPtr(false)
	}
	if in.Published == nil {
		in.Published = boolPtr(true)
	}

	return errs
}

// BlogPostPatch validates a partial update; only supplied fields are
// checked. Supplied strings are trimmed in place.
func BlogPostPatch(p *models.BlogPostPatch) []FieldError {
	var errs []FieldError

	errs = checkText(errs, "title", p.Title, "Title is required.")
	errs = checkText(errs, "excerpt", p.Excerpt, "Excerpt is required.")
	errs = checkText(errs, "content", p.Content, "Content is required.")
	errs = checkText(errs, "category", p.Category, "Category is required.")
	errs = checkText(errs, "readTime", p.ReadTime, "Read time is required.")

	if p.ImageURL != nil {
		*p.ImageURL = strings.TrimSpace(*p.ImageURL)
		if !isAbsoluteURL(*p.ImageURL) {
			errs = append(errs, FieldError{"imageUrl", "Image URL must be an absolute URL."})
		}
	}

	return errs
}

// Project normalizes and validates a project creation payload in place.
func Project(in *models.ProjectInput) []FieldError {
	var errs []FieldError

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.VideoID = strings.TrimSpace(in.VideoID)
	in.DemoURL = strings.TrimSpace(in.DemoURL)
	in.GithubURL = strings.TrimSpace(in.GithubURL)

	errs = appendRequired(errs, "title", in.Title, "Title is required.")
	errs = appendRequired(errs, "description", in.Description, "Description is required.")
	errs = appendRequired(errs, "videoId", in.VideoID, "Video ID is required.")

	in.TechStack = cleanStack(in.TechStack)
	if len(in.TechStack) == 0 {
		errs = append(errs, FieldError{"techStack", "At least one technology is required."})
	}

	if in.DemoURL != "" && !isAbsoluteURL(in.DemoURL) {
		errs = append(errs, FieldError{"demoUrl", "Demo URL must be an absolute URL."})
	}
	if in.GithubURL != "" && !isAbsoluteURL(in.GithubURL) {
		errs = append(errs, FieldError{"githubUrl", "GitHub URL must be an absolute URL."})
	}

	if in.Featured == nil {
		in.Featured = boolPtr(false)
	}
	if in.Published == nil {
		in.Published = boolPtr(true)
	}

	return errs
}

// ProjectPatch validates a partial project update.
func ProjectPatch(p *models.ProjectPatch) []FieldError {
	var errs []FieldError

	errs = checkText(errs, "title", p.Title, "Title is required.")
	errs = checkText(errs, "description", p.Description, "Description is required.")
	errs = checkText(errs, "videoId", p.VideoID, "Video ID is required.")

	if p.TechStack != nil {
		*p.TechStack = cleanStack(*p.TechStack)
		if len(*p.TechStack) == 0 {
			errs = append(errs, FieldError{"techStack", "At least one technology is required."})
		}
	}

	if p.DemoURL != nil {
		*p.DemoURL = strings.TrimSpace(*p.DemoURL)
		if *p.DemoURL != "" && !isAbsoluteURL(*p.DemoURL) {
			errs = append(errs, FieldError{"demoUrl", "Demo URL must be an absolute URL."})
		}
	}
	if p.GithubURL != nil {
		*p.GithubURL = strings.TrimSpace(*p.GithubURL)
		if *p.GithubURL != "" && !isAbsoluteURL(*p.GithubURL) {
			errs = append(errs, FieldError{"githubUrl", "GitHub URL must be an absolute URL."})
		}
	}

	return errs
}

// ContactMessage normalizes and validates a contact form submission in place.
func ContactMessage(in *models.ContactMessageInput) []FieldError {
	var errs []FieldError

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if utf8.RuneCountInString(in.Name) < minNameLen {
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters."})
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, FieldError{"email", "Email address is not valid."})
	}
	if utf8.RuneCountInString(in.Message) < minMessageLen {
		errs = append(errs, FieldError{"message", "Message must be at least 10 characters."})
	}

	return errs
}

// appendRequired rejects empty (post-trim) values for a required text field.
func appendRequired(errs []FieldError, field, value, message string) []FieldError {
	if value == "" {
		errs = append(errs, FieldError{field, message})
	}
	return errs
}

// checkText trims a supplied patch field and rejects it if empty,
// since a partial update may not blank out a required field.
func checkText(errs []FieldError, field string, value *string, message string) []FieldError {
	if value == nil {
		return errs
	}
	*value = strings.TrimSpace(*value)
	if *value == "" {
		errs = append(errs, FieldError{field, message})
	}
	return errs
}

// appendLengthCaps enforces upper bounds on the free-text blog fields.
func appendLengthCaps(errs []FieldError, title, excerpt, content string) []FieldError {
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, FieldError{"title", "Title is too long (max 300 characters)."})
	}
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		errs = append(errs, FieldError{"excerpt", "Excerpt is too long (max 1,000 characters)."})
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		errs = append(errs, FieldError{"content", "Content is too long (max 100,000 characters)."})
	}
	return errs
}

// cleanStack trims every entry and drops the empty ones. Duplicates are
// kept — the sequence is ordered and duplication is the caller's choice.
func cleanStack(stack []string) []string {
	out := make([]string, 0, len(stack))
	for _, entry := range stack {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// isAbsoluteURL reports whether s parses as a URL with a scheme and host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func boolPtr(b bool) *bool { return &b }
