// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package reader

import (
	"fmt"
	"strings"

	"github.com/tomtom215/newsdesk/internal/models"
	"github.com/tomtom215/newsdesk/internal/state"
	"github.com/tomtom215/newsdesk/internal/validation"
)

// Categories returns the configured categories.
func (s *Service) Categories() ([]models.Category, uint64) {
	st, version := s.store.Snapshot()
	return st.Categories, version
}

// AddCategory creates a category. Names are unique, compared without case.
func (s *Service) AddCategory(name string) (models.Category, error) {
	c := models.Category{Name: name}
	if verr := validation.ValidateStruct(&c); verr != nil {
		return models.Category{}, verr
	}

	st, _ := s.store.Snapshot()
	for _, existing := range st.Categories {
		if strings.EqualFold(existing.Name, name) {
			return models.Category{}, fmt.Errorf("category %q: %w", name, ErrCategoryExists)
		}
	}

	c.ID = s.newID()
	s.store.Dispatch(state.AddCategory{Category: c})
	return c, nil
}

// RemoveCategory deletes a category. Articles keep their category label.
func (s *Service) RemoveCategory(id string) error {
	st, _ := s.store.Snapshot()
	for _, c := range st.Categories {
		if c.ID == id {
			s.store.Dispatch(state.RemoveCategory{CategoryID: id})
			return nil
		}
	}
	return fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
}

// Preferences returns the reading preferences.
func (s *Service) Preferences() models.ReadingPreferences {
	st, _ := s.store.Snapshot()
	return st.Preferences
}

// UpdatePreferences merges patch into the current preferences. The merged
// result is validated as a whole, and nothing is stored when it fails.
func (s *Service) UpdatePreferences(patch models.PreferencesPatch) (models.ReadingPreferences, error) {
	merged := patch.Apply(s.Preferences())
	if verr := validation.ValidateStruct(&merged); verr != nil {
		return models.ReadingPreferences{}, verr
	}
	st := s.store.Dispatch(state.UpdatePreferences{Patch: patch})
	return st.Preferences, nil
}
