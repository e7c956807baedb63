package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const maxExperienceYears = 60

// Experience-years phrasings, checked in order; the first match wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\b`),
	regexp.MustCompile(`experience[:\s]\s*(\d+)\+?\s*years?`),
}

var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`[$€£]\s*\d`),
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// ExtractProfile builds the structured profile of one document. The text
// is normalized first, so callers may pass raw input. Extraction never
// fails; anything the heuristics cannot find is left empty or nil.
func ExtractProfile(text string, v *vocab.Vocabulary) *types.ExtractedProfile {
	normalized := Normalize(text)

	profile := &types.ExtractedProfile{
		Skills:       matchTerms(normalized, v.Skills, v),
		Technologies: matchTerms(normalized, v.Technologies, v),
		Education:    matchTerms(normalized, v.EducationKeywords, nil),
	}

	profile.ExperienceYears = extractExperienceYears(normalized)
	profile.ExperienceLevel = extractExperienceLevel(normalized, profile.ExperienceYears, v)
	profile.Achievements = extractAchievements(normalized, v)

	return profile
}

// matchTerms returns the vocabulary terms present in the text, collapsed
// to canonical names, deduplicated, in first-occurrence order.
func matchTerms(text string, terms []string, v *vocab.Vocabulary) []string {
	type hit struct {
		name string
		pos  int
	}
	hits := []hit{}
	seen := make(map[string]bool)

	for _, term := range terms {
		pos := strings.Index(text, term)
		if pos < 0 {
			continue
		}
		name := term
		if v != nil {
			name = v.Canonical(term)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		hits = append(hits, hit{name: name, pos: pos})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	found := make([]string, 0, len(hits))
	for _, h := range hits {
		found = append(found, h.name)
	}
	return found
}

func extractExperienceYears(text string) *int {
	for _, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		// Digit runs beyond a plausible career length are noise, not years.
		if err != nil || years > maxExperienceYears {
			continue
		}
		return &years
	}
	return nil
}

// extractExperienceLevel maps seniority keywords to a level. Stated years
// without a seniority keyword imply mid.
func extractExperienceLevel(text string, years *int, v *vocab.Vocabulary) string {
	best := ""
	bestPos := -1
	for keyword, level := range v.SeniorityKeywords {
		pos := strings.Index(text, keyword)
		if pos < 0 {
			continue
		}
		// Earliest mention wins so map order cannot change the result.
		if bestPos < 0 || pos < bestPos || (pos == bestPos && level < best) {
			best = level
			bestPos = pos
		}
	}
	if best != "" {
		return best
	}
	if years != nil {
		return "mid"
	}
	return "unknown"
}

// extractAchievements reports achievement tags, not raw sentences. A tag
// appears once no matter how many verbs triggered it; quantified outcomes
// add a "quantified results" tag.
func extractAchievements(text string, v *vocab.Vocabulary) []string {
	tokens := make(map[string]bool)
	for _, token := range tokenPattern.FindAllString(text, -1) {
		tokens[token] = true
	}

	seen := make(map[string]bool)
	for verb, tag := range v.AchievementVerbs {
		if tokens[verb] {
			seen[tag] = true
		}
	}
	for _, pattern := range quantifiedPatterns {
		if pattern.MatchString(text) {
			seen["quantified results"] = true
			break
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
