package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecommendationSet(t *testing.T) {
	raw := `[{"career_path":"Data Engineer","skills_required":["Spark","SQL"],"job_roles":["Data Engineer"],"salary_expectations_inr":"₹6 - ₹10 LPA","unexpected":true}]`

	set, err := NewRecommendationSet([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	out, err := json.Marshal(map[string]interface{}{"recommendations": set})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendations":`+raw+`}`, string(out), "extra fields pass through")

	items, err := set.Items()
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", items[0].CareerPath)
	assert.Equal(t, []string{"Spark", "SQL"}, items[0].SkillsRequired)
	assert.Empty(t, items[0].LearningPathway)
}

func TestNewRecommendationSetRejectsNonArrays(t *testing.T) {
	for _, raw := range []string{`{}`, `null`, `"x"`, `not json`, ``} {
		_, err := NewRecommendationSet([]byte(raw))
		assert.Error(t, err, "input %q", raw)
	}
}

func TestRecommendationSetItemsTypeMismatch(t *testing.T) {
	set, err := NewRecommendationSet([]byte(`[{"job_roles":"not a list"}]`))
	require.NoError(t, err)

	_, err = set.Items()
	assert.Error(t, err)
}

func TestEmptyRecommendationSetMarshalsEmptyArray(t *testing.T) {
	out, err := json.Marshal(&RecommendationSet{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
