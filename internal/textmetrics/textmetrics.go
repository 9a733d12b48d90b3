// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package textmetrics

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the assumed average reading speed.
const WordsPerMinute = 200

// Reading level labels returned by CalculateReadingDifficulty.
const (
	LevelUnknown       = "Unknown"
	LevelVeryEasy      = "Very Easy"
	LevelEasy          = "Easy"
	LevelModerate      = "Moderate"
	LevelDifficult     = "Difficult"
	LevelVeryDifficult = "Very Difficult"
)

var (
	sentencePattern  = regexp.MustCompile(`[^.!?]+[.!?]+`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
	vowelGroup       = regexp.MustCompile(`[aeiouy]+`)
)

// Statistics summarizes the structure of a text.
type Statistics struct {
	WordCount               int `json:"wordCount"`
	SentenceCount           int `json:"sentenceCount"`
	ParagraphCount          int `json:"paragraphCount"`
	AverageWordsPerSentence int `json:"averageWordsPerSentence"`
}

// Difficulty is a Flesch-Kincaid grade level with its label.
type Difficulty struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateReadingTime returns ceil(words / WordsPerMinute). Empty text is 0.
func EstimateReadingTime(text string) int {
	words := CountWords(text)
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// CountSyllables approximates the syllable count of text.
//
// Each token is lower-cased and stripped to a-z. Maximal vowel runs count as
// syllables; a trailing 'e' (but not "le") on words longer than three letters
// is treated as silent. Every token counts at least once.
func CountSyllables(text string) int {
	count := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		word := stripNonAlpha(token)

		syllables := len(vowelGroup.FindAllStringIndex(word, -1))
		if len(word) > 3 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
			syllables--
		}
		if syllables < 1 {
			syllables = 1
		}
		count += syllables
	}
	return count
}

func stripNonAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CountSentences returns the number of terminated sentences in text.
func CountSentences(text string) int {
	return len(sentencePattern.FindAllStringIndex(text, -1))
}

// GetTextStatistics returns word, sentence and paragraph counts for text.
func GetTextStatistics(text string) Statistics {
	if text == "" {
		return Statistics{}
	}

	words := CountWords(text)
	sentences := CountSentences(text)
	paragraphs := len(paragraphPattern.FindAllStringIndex(text, -1)) + 1

	avg := 0
	if sentences > 0 {
		avg = int(roundHalfUp(float64(words) / float64(sentences)))
	}

	return Statistics{
		WordCount:               words,
		SentenceCount:           sentences,
		ParagraphCount:          paragraphs,
		AverageWordsPerSentence: avg,
	}
}

// CalculateReadingDifficulty returns the Flesch-Kincaid grade level of text,
// rounded to one decimal place. The level label is chosen from the unrounded
// score. Text without words or sentences is {0, "Unknown"}.
func CalculateReadingDifficulty(text string) Difficulty {
	if text == "" {
		return Difficulty{Score: 0, Level: LevelUnknown}
	}

	stats := GetTextStatistics(text)
	if stats.WordCount == 0 || stats.SentenceCount == 0 {
		return Difficulty{Score: 0, Level: LevelUnknown}
	}

	words := float64(stats.WordCount)
	syllables := float64(CountSyllables(text))
	score := 0.39*(words/float64(stats.SentenceCount)) + 11.8*(syllables/words) - 15.59

	return Difficulty{
		Score: roundHalfUp(score*10) / 10,
		Level: levelFor(score),
	}
}

func levelFor(score float64) string {
	switch {
	case score <= 5:
		return LevelVeryEasy
	case score <= 8:
		return LevelEasy
	case score <= 12:
		return LevelModerate
	case score <= 15:
		return LevelDifficult
	default:
		return LevelVeryDifficult
	}
}

// FormatReadingTime renders a minute count for display.
func FormatReadingTime(minutes int) string {
	switch {
	case minutes < 1:
		return "Less than a minute"
	case minutes == 1:
		return "1 minute"
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}

// Summarize returns the first n sentences of text joined by a space. Text with
// n or fewer sentences is returned unchanged.
func Summarize(text string, n int) string {
	if text == "" {
		return ""
	}
	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) <= n {
		return text
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.TrimSpace(sentences[i])
	}
	return strings.Join(parts, " ")
}

// Excerpt returns the first n runes of text, with "..." appended when the
// text was truncated.
func Excerpt(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}

// roundHalfUp rounds x to the nearest integer with ties toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
