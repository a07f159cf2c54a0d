package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

var profileFields = []string{"interests", "skills", "academics"}

// Only presence is required. Values of any JSON type are accepted.
var profileSchemaLoader = gojsonschema.NewStringLoader(`{
  "type": "object",
  "required": ["interests", "skills", "academics"]
}`)

var errBodyNotJSON = errors.New("request body is not valid JSON")

// ParseProfile decodes an advice request body. A body that is not JSON is an
// internal error; JSON that is not an object holding all three keys is a
// validation error.
func ParseProfile(body []byte) (models.StudentProfile, error) {
	if !json.Valid(body) {
		return models.StudentProfile{}, advisor.InternalError(errBodyNotJSON)
	}

	result, err := gojsonschema.Validate(profileSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return models.StudentProfile{}, advisor.InternalError(fmt.Errorf("validate request: %w", err))
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return models.StudentProfile{}, advisor.ValidationError(errors.New(strings.Join(issues, "; ")))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.StudentProfile{}, advisor.InternalError(fmt.Errorf("decode request: %w", err))
	}

	return models.StudentProfile{
		Interests: fieldText(fields["interests"]),
		Skills:    fieldText(fields["skills"]),
		Academics: fieldText(fields["academics"]),
	}, nil
}

// fieldText returns a JSON string's value, or the JSON text of anything else.
func fieldText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
