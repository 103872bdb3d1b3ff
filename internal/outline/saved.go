package outline

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mghazyfawazh/outlines/internal/models"
)

// NewSaved prepares a raw outline document for storage. It fails the same
// way Parse does, so listings are never stored as outlines.
func NewSaved(path []string, raw []byte, now time.Time) (*models.SavedOutline, error) {
	o, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	s := &models.SavedOutline{
		UUID:      uuid.New().String(),
		Path:      strings.Join(path, "/"),
		Document:  string(raw),
		CreatedAt: now,
	}
	if o.Info != nil {
		s.OutlinePath = models.Value(o.Info.OutlinePath)
		s.Name = models.Value(o.Info.Name)
		s.Title = models.Value(o.Info.Title)
	}
	if s.OutlinePath == "" {
		s.OutlinePath = s.Path
	}
	return s, nil
}
