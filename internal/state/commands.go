// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package state

import (
	"time"

	"github.com/tomtom215/newsdesk/internal/models"
)

// Command is a state mutation. The set of commands is closed; Reduce handles
// every implementation in this package.
type Command interface {
	// Name is a stable identifier used for logging and metrics.
	Name() string
	isCommand()
}

// SetFeeds replaces the feed list.
type SetFeeds struct{ Feeds []models.Feed }

// AddFeed appends a feed. A feed whose ID or URL is already present is
// ignored.
type AddFeed struct{ Feed models.Feed }

// RemoveFeed deletes the feed with FeedID.
type RemoveFeed struct{ FeedID string }

// UpdateFeed replaces the feed whose ID matches Feed.ID.
type UpdateFeed struct{ Feed models.Feed }

// SetArticles replaces the article list.
type SetArticles struct{ Articles []models.Article }

// AddArticles appends articles whose URL is not already present.
type AddArticles struct{ Articles []models.Article }

// MarkRead marks an article read at At. Only the first read is recorded.
type MarkRead struct {
	ArticleID string
	At        time.Time
}

// ToggleBookmark flips an article's bookmark flag.
type ToggleBookmark struct{ ArticleID string }

// SetBookmarks replaces the bookmark list and syncs article flags.
type SetBookmarks struct{ ArticleIDs []string }

// UpdateReadingTime folds one reading tick into the article and statistics.
type UpdateReadingTime struct{ Tick models.ReadingTick }

// SetCategories replaces the category list.
type SetCategories struct{ Categories []models.Category }

// AddCategory appends a category.
type AddCategory struct{ Category models.Category }

// RemoveCategory deletes the category with CategoryID.
type RemoveCategory struct{ CategoryID string }

// UpdatePreferences merges a partial preferences update.
type UpdatePreferences struct{ Patch models.PreferencesPatch }

// SetPreferences replaces the reading preferences.
type SetPreferences struct{ Preferences models.ReadingPreferences }

// SetStatistics replaces the folded reading statistics.
type SetStatistics struct{ Statistics models.ReadingStatistics }

// SetLoading sets the loading flag.
type SetLoading struct{ Loading bool }

// SetError records a user-facing error message.
type SetError struct{ Message string }

// ClearError clears the error message.
type ClearError struct{}

func (SetFeeds) Name() string          { return "set_feeds" }
func (AddFeed) Name() string           { return "add_feed" }
func (RemoveFeed) Name() string        { return "remove_feed" }
func (UpdateFeed) Name() string        { return "update_feed" }
func (SetArticles) Name() string       { return "set_articles" }
func (AddArticles) Name() string       { return "add_articles" }
func (MarkRead) Name() string          { return "mark_read" }
func (ToggleBookmark) Name() string    { return "toggle_bookmark" }
func (SetBookmarks) Name() string      { return "set_bookmarks" }
func (UpdateReadingTime) Name() string { return "update_reading_time" }
func (SetCategories) Name() string     { return "set_categories" }
func (AddCategory) Name() string       { return "add_category" }
func (RemoveCategory) Name() string    { return "remove_category" }
func (UpdatePreferences) Name() string { return "update_preferences" }
func (SetPreferences) Name() string    { return "set_preferences" }
func (SetStatistics) Name() string     { return "set_statistics" }
func (SetLoading) Name() string        { return "set_loading" }
func (SetError) Name() string          { return "set_error" }
func (ClearError) Name() string        { return "clear_error" }

func (SetFeeds) isCommand()          {}
func (AddFeed) isCommand()           {}
func (RemoveFeed) isCommand()        {}
func (UpdateFeed) isCommand()        {}
func (SetArticles) isCommand()       {}
func (AddArticles) isCommand()       {}
func (MarkRead) isCommand()          {}
func (ToggleBookmark) isCommand()    {}
func (SetBookmarks) isCommand()      {}
func (UpdateReadingTime) isCommand() {}
func (SetCategories) isCommand()     {}
func (AddCategory) isCommand()       {}
func (RemoveCategory) isCommand()    {}
func (UpdatePreferences) isCommand() {}
func (SetPreferences) isCommand()    {}
func (SetStatistics) isCommand()     {}
func (SetLoading) isCommand()        {}
func (SetError) isCommand()          {}
func (ClearError) isCommand()        {}
