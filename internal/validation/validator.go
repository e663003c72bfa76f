package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blog-platform-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticleDraft validates the author-supplied fields of an article
// create/edit form.
func ValidateArticleDraft(draft *models.ArticleDraft) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(draft.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(draft.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}
	if strings.TrimSpace(draft.Excerpt) == "" {
		errors = append(errors, ValidationError{Field: "excerpt", Message: "excerpt is required"})
	}

	if draft.Category == "" {
		errors = append(errors, ValidationError{Field: "category", Message: "category is required"})
	} else if !models.ValidCategories[draft.Category] {
		errors = append(errors, ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("invalid category, must be one of: %s", strings.Join(categoryNames(), ", ")),
			Value:   draft.Category,
		})
	}

	for _, tag := range draft.Tags {
		if strings.TrimSpace(tag) == "" {
			errors = append(errors, ValidationError{Field: "tags", Message: "tags must not be blank"})
			break
		}
	}

	return errors
}

// ValidateLogin validates a login form.
func ValidateLogin(email, password string) []ValidationError {
	var errors []ValidationError

	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: email})
	}
	if password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}

	return errors
}

// ValidateRegistration validates a registration form.
func ValidateRegistration(name, email, password string) []ValidationError {
	errors := ValidateLogin(email, password)

	if strings.TrimSpace(name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}

	return errors
}

// IsValidSlug reports whether s is a lowercase, hyphen-separated URL-safe
// slug.
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

func categoryNames() []string {
	// Fixed presentation order for error messages.
	ordered := []string{"Technology", "Lifestyle", "Health", "Business", "Culture"}
	out := ordered[:0:0]
	for _, c := range ordered {
		if models.ValidCategories[c] {
			out = append(out, c)
		}
	}
	return out
}
