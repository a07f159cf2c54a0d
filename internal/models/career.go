package models

import (
	"encoding/json"
	"fmt"
)

// StudentProfile is what a student tells us about themselves.
type StudentProfile struct {
	Interests string `json:"interests"`
	Skills    string `json:"skills"`
	Academics string `json:"academics"`
}

type CareerRecommendation struct {
	CareerPath            string   `json:"career_path"`
	Description           string   `json:"description"`
	SkillsRequired        []string `json:"skills_required"`
	JobRoles              []string `json:"job_roles"`
	LearningPathway       string   `json:"learning_pathway"`
	SalaryExpectationsINR string   `json:"salary_expectations_inr"`
}

// RecommendationSet holds the JSON array returned by the model exactly as it
// was parsed, so it can be relayed to callers without reshaping.
type RecommendationSet struct {
	raw     json.RawMessage
	entries []json.RawMessage
}

// NewRecommendationSet accepts only a JSON array.
func NewRecommendationSet(data []byte) (*RecommendationSet, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, fmt.Errorf("expected a JSON array, got null")
	}

	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	return &RecommendationSet{raw: raw, entries: entries}, nil
}

func (s *RecommendationSet) Len() int {
	return len(s.entries)
}

// Raw returns the array as received.
func (s *RecommendationSet) Raw() json.RawMessage {
	return s.raw
}

// Items decodes the set into typed recommendations. Fields the model left
// out are zero-valued; fields with the wrong JSON type cause an error.
func (s *RecommendationSet) Items() ([]CareerRecommendation, error) {
	items := make([]CareerRecommendation, 0, len(s.entries))
	for i, entry := range s.entries {
		var rec CareerRecommendation
		if err := json.Unmarshal(entry, &rec); err != nil {
			return nil, fmt.Errorf("recommendation %d: %w", i, err)
		}
		items = append(items, rec)
	}
	return items, nil
}

func (s *RecommendationSet) MarshalJSON() ([]byte, error) {
	if s == nil || len(s.raw) == 0 {
		return []byte("[]"), nil
	}
	return s.raw, nil
}
