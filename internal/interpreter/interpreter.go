// Package interpreter turns a free-text travel sentence into a place
// candidate and an intent. It is pure: no network or state access, and the
// same text always yields the same result.
package interpreter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Result is the interpreter output for one sentence.
type Result struct {
	Place  string        // Raw substring believed to name a place; empty if none detected.
	Intent models.Intent // Derived intent; IntentUnknown when no place was found.
}

// placePatterns are tried in order; the first capturing match wins.
// The (?i) flag mirrors the tolerant matching of common travel phrasings,
// so the leading letter class also accepts lowercase place mentions.
var placePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)going to (?:go to |visit )?([A-Z][a-zA-Z ]+?)(?:[,.!?]|$)`),
	regexp.MustCompile(`(?i)\bvisit ([A-Z][a-zA-Z ]+?)(?:[,.!?]|$)`),
	regexp.MustCompile(`(?i)\bin ([A-Z][a-zA-Z ]+?)(?:[,.!?]|$)`),
	regexp.MustCompile(`(?i)\bto ([A-Z][a-zA-Z ]+?)(?:[,.!?]|$)`),
}

var articlesPattern = regexp.MustCompile(`(?i)\s+(the|a|an)\s+`)

// keywordSet is a named list of trigger words matched case-insensitively
// anywhere in the text.
type keywordSet []string

func (ks keywordSet) matches(lower string) bool {
	for _, kw := range ks {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

var (
	weatherKeywords = keywordSet{"temperature", "weather", "rain", "hot", "cold", "forecast", "temp", "climate"}
	placesKeywords  = keywordSet{"places", "visit", "attractions", "tourist", "sightseeing", "plan", "trip", "tour", "destination"}
)

// intentRule pairs a predicate over the two keyword matches with the intent
// it yields. Rules are evaluated in fixed precedence order.
type intentRule struct {
	applies func(weather, places bool) bool
	intent  models.Intent
}

var intentRules = []intentRule{
	{func(w, p bool) bool { return w && p }, models.IntentBoth},
	{func(w, p bool) bool { return w }, models.IntentWeather},
	{func(w, p bool) bool { return p }, models.IntentPlaces},
	// Documented default: a place with no keyword reads as a trip-planning
	// request, mirroring the "plan my trip" phrasing.
	{func(w, p bool) bool { return true }, models.IntentPlaces},
}

// Interpret parses a raw user sentence into a place candidate and an intent.
// An empty sentence or one without any detectable place yields an empty
// candidate and IntentUnknown.
func Interpret(text string) Result {
	place := extractPlace(text)
	if place == "" {
		return Result{Place: "", Intent: models.IntentUnknown}
	}

	return Result{Place: place, Intent: detectIntent(text)}
}

// extractPlace runs the ordered pattern list and falls back to the first
// capitalized tokens when no phrasing pattern matches.
func extractPlace(text string) string {
	for _, pattern := range placePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		place := strings.TrimSpace(match[1])
		place = articlesPattern.ReplaceAllString(place, " ")
		return strings.TrimSpace(place)
	}

	return capitalizedFallback(text)
}

// capitalizedFallback picks up to the first three capitalized words, which
// are likely place names in queries that skip the usual phrasings.
func capitalizedFallback(text string) string {
	const maxTokens = 3

	var picked []string
	for _, word := range strings.Fields(text) {
		word = strings.TrimFunc(word, unicode.IsPunct)
		runes := []rune(word)
		if len(runes) <= 2 || !unicode.IsUpper(runes[0]) {
			continue
		}
		picked = append(picked, word)
		if len(picked) == maxTokens {
			break
		}
	}

	return strings.Join(picked, " ")
}

func detectIntent(text string) models.Intent {
	lower := strings.ToLower(text)
	wantsWeather := weatherKeywords.matches(lower)
	wantsPlaces := placesKeywords.matches(lower)

	for _, rule := range intentRules {
		if rule.applies(wantsWeather, wantsPlaces) {
			return rule.intent
		}
	}
	return models.IntentUnknown
}
