package rack

import (
	"fmt"
	"time"
)

// Site groups racks and devices by physical location.
type Site struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
	updatedAt time.Time
}

// NewSite creates a new site.
func NewSite(name, slug string) (*Site, error) {
	if name == "" {
		return nil, fmt.Errorf("site name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("site slug is required")
	}

	now := time.Now()
	return &Site{
		name:      name,
		slug:      slug,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSite reconstructs a site from persistence.
func ReconstructSite(id uint, name, slug string, createdAt, updatedAt time.Time) (*Site, error) {
	if id == 0 {
		return nil, fmt.Errorf("site ID is required for reconstruction")
	}
	s, err := NewSite(name, slug)
	if err != nil {
		return nil, err
	}
	s.id = id
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s, nil
}

// SetID sets the site ID after persistence. It may only be set once.
func (s *Site) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("site ID already set")
	}
	if id == 0 {
		return fmt.Errorf("site ID must not be zero")
	}
	s.id = id
	return nil
}

func (s *Site) ID() uint             { return s.id }
func (s *Site) Name() string         { return s.name }
func (s *Site) Slug() string         { return s.slug }
func (s *Site) CreatedAt() time.Time { return s.createdAt }
func (s *Site) UpdatedAt() time.Time { return s.updatedAt }
