// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

// Package stats derives reading analytics from the article collection.
//
// Every aggregate is a pure function of the articles passed in. Read events are
// taken from each article's IsRead and ReadDate fields, so the package never
// needs a separate event log. Articles with no ReadDate still count toward
// category totals but are left out of every date-bucketed aggregate.
//
// Calendar math (hour of day, day buckets, streaks) runs in the configured
// location:
//
//	agg, err := stats.NewAggregator(stats.Config{Timezone: "Europe/Berlin"})
//	if err != nil {
//	    return err
//	}
//	report := agg.Report(articles, statistics)
package stats
