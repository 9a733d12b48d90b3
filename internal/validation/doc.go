// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package validation wraps go-playground/validator v10 with a shared instance,
the feedurl and category tags, and errors that convert to the API's
VALIDATION_ERROR envelope.

	type addFeedRequest struct {
	    URL      string `json:"url" validate:"required,feedurl"`
	    Category string `json:"category" validate:"omitempty,category"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}

Field names in messages come from json tags, so they match request bodies.
*/
package validation
