package sections

import (
	"strings"

	"github.com/jonathan/resume-curator/internal/types"
)

const (
	headerLines         = 2
	headerLinesWithLink = 3
)

// Header is the contact block at the top of the resume. It is never trimmed.
type Header struct {
	name     string
	email    string
	phone    string
	location string
	linkedIn string
	gitHub   string
	website  string
}

// NewHeader builds a Header from candidate metadata. Empty links are treated as absent.
func NewHeader(meta types.Metadata) (*Header, error) {
	meta.Name = strings.TrimSpace(meta.Name)
	meta.Email = strings.TrimSpace(meta.Email)
	meta.Phone = strings.TrimSpace(meta.Phone)
	meta.Location = strings.TrimSpace(meta.Location)
	if err := checkRecord("header", meta.Name, meta); err != nil {
		return nil, err
	}

	return &Header{
		name:     meta.Name,
		email:    meta.Email,
		phone:    meta.Phone,
		location: meta.Location,
		linkedIn: strings.TrimSpace(meta.LinkedIn),
		gitHub:   strings.TrimSpace(meta.GitHub),
		website:  strings.TrimSpace(meta.Website),
	}, nil
}

func (h *Header) Name() string     { return h.name }
func (h *Header) Email() string    { return h.email }
func (h *Header) Phone() string    { return h.phone }
func (h *Header) Location() string { return h.location }
func (h *Header) LinkedIn() string { return h.linkedIn }
func (h *Header) GitHub() string   { return h.gitHub }
func (h *Header) Website() string  { return h.website }

// HasLinks reports whether any profile link is present.
func (h *Header) HasLinks() bool {
	return h.linkedIn != "" || h.gitHub != "" || h.website != ""
}

// LineLength is 2, or 3 when a links row is needed.
func (h *Header) LineLength() int {
	if h.HasLinks() {
		return headerLinesWithLink
	}
	return headerLines
}

// ToMap returns the header as a neutral map. Absent links are nil.
func (h *Header) ToMap() map[string]any {
	return map[string]any{
		"name":        h.name,
		"email":       h.email,
		"phone":       h.phone,
		"location":    h.location,
		"linkedin":    optional(h.linkedIn),
		"github":      optional(h.gitHub),
		"website":     optional(h.website),
		"line_length": h.LineLength(),
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
