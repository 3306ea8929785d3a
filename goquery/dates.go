package goquery

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// datePatterns pairs a recognizer with the layout used to parse its
// match. Tried in order, first successful parse wins. The layouts
// assume commas have been stripped by cleanDateText. These patterns
// are tuned against real blogs; their ordering and anchoring are part
// of the extraction semantics.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), "2006-01-02"},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "02/01/2006"},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "01/02/2006"},
	{regexp.MustCompile(`[A-Z][a-z]+\s+\d{1,2},?\s+\d{4}`), "January 2 2006"},
	{regexp.MustCompile(`\d{1,2}\s+[A-Z][a-z]+,?\s+\d{4}`), "2 January 2006"},
	{regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{1,2},?\s+\d{4}`), "Jan 2 2006"},
	{regexp.MustCompile(`\d{1,2}\s+[A-Z][a-z]{2}\s+\d{4}`), "2 Jan 2006"},
}

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// URL-embedded date forms: /2024/12/15/... and /2024-12-15-...
	urlDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`),
		regexp.MustCompile(`/(\d{4})-(\d{2})-(\d{2})-`),
	}
)

// cleanDateText collapses whitespace and strips commas so a single
// layout per pattern covers the comma variants.
func cleanDateText(s string) string {
	s = whitespaceRE.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// extractDate tries the date pattern table against text. A pattern
// whose match fails to parse is skipped rather than treated as an
// error; posts simply stay undated when nothing parses.
func extractDate(text string) *time.Time {
	if text == "" {
		return nil
	}
	for _, p := range datePatterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		if t, err := time.Parse(p.layout, cleanDateText(m)); err == nil {
			return &t
		}
	}
	return nil
}

// extractDateFromURL recognizes dates embedded in URL paths.
func extractDateFromURL(rawURL string) *time.Time {
	for _, re := range urlDatePatterns {
		m := re.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}
		if t, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])); err == nil {
			return &t
		}
	}
	return nil
}

// monthsByName maps abbreviated month names to months, for index pages
// that date posts as "Mar 2016".
var monthsByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var monthYearRE = regexp.MustCompile(`\b([A-Za-z]{3})\s+(\d{4})\b`)

// extractMonthYear parses "Mon YYYY" dates, anchoring them to the
// first of the month.
func extractMonthYear(text string) *time.Time {
	m := monthYearRE.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	month, ok := monthsByName[strings.ToLower(m[1])]
	if !ok {
		return nil
	}
	var year int
	if _, err := fmt.Sscanf(m[2], "%d", &year); err != nil {
		return nil
	}
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &t
}
