package service

import (
	"errors"
	"strings"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"

	"gorm.io/gorm"
)

// CatalogService maintains the freeform vocabularies (categories,
// sizes, payment methods). Values are deduplicated on a normalized
// form so casing and stray whitespace don't multiply entries.
type CatalogService struct {
	catalogs *repository.CatalogRepo
}

func NewCatalogService(catalogs *repository.CatalogRepo) *CatalogService {
	return &CatalogService{catalogs: catalogs}
}

// Normalize trims, collapses inner whitespace and case-folds.
func Normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// AddIfAbsent registers a vocabulary value, returning the existing
// entry when an equivalent one is already present. The first spelling
// typed wins as the display value.
func (s *CatalogService) AddIfAbsent(kind, value string) (*models.CatalogEntry, error) {
	normalized := Normalize(value)
	if normalized == "" {
		return nil, validationErrorf("catalog value cannot be blank")
	}

	existing, err := s.catalogs.FindByKindAndNormalized(kind, normalized)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &models.CatalogEntry{
		Kind:       kind,
		Value:      strings.TrimSpace(value),
		Normalized: normalized,
	}
	if err := s.catalogs.Create(entry); err != nil {
		// Lost a race against a concurrent insert; the winner's row is
		// the one we wanted anyway.
		if winner, ferr := s.catalogs.FindByKindAndNormalized(kind, normalized); ferr == nil {
			return winner, nil
		}
		return nil, err
	}
	return entry, nil
}

// Values lists the display spellings for a vocabulary, sorted.
func (s *CatalogService) Values(kind string) ([]string, error) {
	entries, err := s.catalogs.FindByKind(kind)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values, nil
}
