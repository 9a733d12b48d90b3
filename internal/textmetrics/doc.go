// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

/*
Package textmetrics computes readability figures from plain text.

All functions are pure and safe for concurrent use.

  - EstimateReadingTime: minutes at 200 words per minute, rounded up
  - CountSyllables: vowel-group heuristic with a silent-e adjustment
  - GetTextStatistics: word, sentence and paragraph counts
  - CalculateReadingDifficulty: Flesch-Kincaid grade level and a label

Words are whitespace-delimited tokens of the trimmed text. Sentences are runs
of non-terminator characters followed by one or more of '.', '!' or '?'.
Paragraph breaks are blank lines.

Empty input always yields zero values; no function panics.
*/
package textmetrics
