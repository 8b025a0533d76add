package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SectionKey names one editable area of the public site. Exactly one stored
// document exists per key; the storage layer enforces this with a unique
// index, not the upsert call itself.
type SectionKey string

const (
	KeyHero        SectionKey = "hero"
	KeyAbout       SectionKey = "about"
	KeySkills      SectionKey = "skills"
	KeyBanners     SectionKey = "banners"
	KeyContact     SectionKey = "contact"
	KeySocial      SectionKey = "social"
	KeyBackgrounds SectionKey = "backgrounds"
)

var ErrSectionNotFound = errors.New("content section not found")

func ParseSectionKey(s string) (SectionKey, error) {
	switch SectionKey(s) {
	case KeyHero, KeyAbout, KeySkills, KeyBanners, KeyContact, KeySocial, KeyBackgrounds:
		return SectionKey(s), nil
	}
	return "", fmt.Errorf("unknown content section key %q", s)
}

// Section is a singleton-per-key configuration document. Content is an
// opaque JSON object; every write replaces it wholesale, there is no
// partial merge at this layer.
type Section struct {
	Key       SectionKey     `json:"key"`
	Content   map[string]any `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type Repository interface {
	Get(ctx context.Context, key SectionKey) (*Section, error)
	Upsert(ctx context.Context, section *Section) error
}

// Cache sits in front of public section reads. A miss is normal and reported
// via ok=false, never as an error.
type Cache interface {
	Get(ctx context.Context, key SectionKey) (*Section, bool, error)
	Set(ctx context.Context, section *Section) error
	Invalidate(ctx context.Context, key SectionKey) error
}
