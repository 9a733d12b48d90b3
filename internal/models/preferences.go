// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package models

// ReadingPreferences controls how the article view is presented.
type ReadingPreferences struct {
	FontSize    int     `json:"fontSize" validate:"min=10,max=32"`
	LineHeight  float64 `json:"lineHeight" validate:"min=1,max=3"`
	FontFamily  string  `json:"fontFamily" validate:"required,max=256"`
	Theme       string  `json:"theme" validate:"oneof=light dark sepia"`
	TextAlign   string  `json:"textAlign" validate:"oneof=left center justify"`
	MarginWidth string  `json:"marginWidth" validate:"oneof=narrow medium wide"`
}

// DefaultReadingPreferences returns the preferences used before the user
// changes anything.
func DefaultReadingPreferences() ReadingPreferences {
	return ReadingPreferences{
		FontSize:    16,
		LineHeight:  1.6,
		FontFamily:  "system-ui, -apple-system, BlinkMacSystemFont, sans-serif",
		Theme:       "light",
		TextAlign:   "left",
		MarginWidth: "medium",
	}
}

// PreferencesPatch is a partial update. Nil fields are left unchanged.
type PreferencesPatch struct {
	FontSize    *int     `json:"fontSize,omitempty"`
	LineHeight  *float64 `json:"lineHeight,omitempty"`
	FontFamily  *string  `json:"fontFamily,omitempty"`
	Theme       *string  `json:"theme,omitempty"`
	TextAlign   *string  `json:"textAlign,omitempty"`
	MarginWidth *string  `json:"marginWidth,omitempty"`
}

// Apply merges the patch into p and returns the result.
//
//nolint:gocritic // hugeParam: preferences passed by value for immutability
func (patch PreferencesPatch) Apply(p ReadingPreferences) ReadingPreferences {
	if patch.FontSize != nil {
		p.FontSize = *patch.FontSize
	}
	if patch.LineHeight != nil {
		p.LineHeight = *patch.LineHeight
	}
	if patch.FontFamily != nil {
		p.FontFamily = *patch.FontFamily
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.TextAlign != nil {
		p.TextAlign = *patch.TextAlign
	}
	if patch.MarginWidth != nil {
		p.MarginWidth = *patch.MarginWidth
	}
	return p
}
