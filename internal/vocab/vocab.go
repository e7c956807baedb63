// Package vocab provides the matching vocabulary: the skill, technology,
// education, seniority and stop-word lists the extractor and scorer run
// against. The default vocabulary is embedded at compile time and can be
// replaced wholesale from a JSON file, so tuning the vocabulary never
// requires touching engine code.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed default_vocabulary.json
var vocabFiles embed.FS

// Vocabulary is one versioned set of matching lists. All entries are
// stored lowercase; matching is case-insensitive substring containment.
type Vocabulary struct {
	Version           string            `json:"version"`
	Skills            []string          `json:"skills"`
	Technologies      []string          `json:"technologies"`
	EducationKeywords []string          `json:"education_keywords"`
	SeniorityKeywords map[string]string `json:"seniority_keywords"` // keyword -> entry|mid|senior|lead
	AchievementVerbs  map[string]string `json:"achievement_verbs"`  // verb -> tag
	StopWords         []string          `json:"stop_words"`
	Aliases           map[string]string `json:"aliases"` // variant -> canonical
}

var (
	defaultVocab *Vocabulary
	defaultOnce  sync.Once
	defaultErr   error
)

// Default returns the embedded vocabulary. The embedded file is parsed
// once and shared; callers must not mutate the result.
func Default() (*Vocabulary, error) {
	defaultOnce.Do(func() {
		data, err := vocabFiles.ReadFile("default_vocabulary.json")
		if err != nil {
			defaultErr = fmt.Errorf("failed to read embedded vocabulary: %w", err)
			return
		}
		defaultVocab, defaultErr = parse(data)
	})
	return defaultVocab, defaultErr
}

// MustDefault returns the embedded vocabulary, panicking if it cannot be
// loaded. The embedded file is part of the binary, so a failure here is a
// build defect.
func MustDefault() *Vocabulary {
	v, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load embedded vocabulary: %v", err))
	}
	return v
}

// Load reads a replacement vocabulary from a JSON file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	v, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid vocabulary file %s: %w", path, err)
	}
	return v, nil
}

func parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if v.Version == "" {
		return nil, fmt.Errorf("vocabulary is missing a version")
	}
	if len(v.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary %q has no skills", v.Version)
	}
	v.lowercase()
	return &v, nil
}

// lowercase forces every entry to the canonical lowercase form.
func (v *Vocabulary) lowercase() {
	lowerAll := func(list []string) {
		for i, s := range list {
			list[i] = strings.ToLower(strings.TrimSpace(s))
		}
	}
	lowerAll(v.Skills)
	lowerAll(v.Technologies)
	lowerAll(v.EducationKeywords)
	lowerAll(v.StopWords)

	lowerMap := func(m map[string]string) map[string]string {
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(val))
		}
		return out
	}
	v.SeniorityKeywords = lowerMap(v.SeniorityKeywords)
	v.AchievementVerbs = lowerMap(v.AchievementVerbs)
	v.Aliases = lowerMap(v.Aliases)
}

// Canonical resolves a skill name variant to its canonical vocabulary form.
func (v *Vocabulary) Canonical(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := v.Aliases[lower]; ok {
		return canonical
	}
	return lower
}

// StopWordSet returns the stop words as a lookup set.
func (v *Vocabulary) StopWordSet() map[string]bool {
	set := make(map[string]bool, len(v.StopWords))
	for _, w := range v.StopWords {
		set[w] = true
	}
	return set
}
