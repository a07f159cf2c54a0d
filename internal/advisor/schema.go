package advisor

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// recommendationSchema describes what the prompt asks the model for. It is
// only used to report drift; replies that do not match are still returned.
const recommendationSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["career_path", "description", "skills_required", "job_roles", "learning_pathway", "salary_expectations_inr"],
    "properties": {
      "career_path": {"type": "string"},
      "description": {"type": "string"},
      "skills_required": {"type": "array", "items": {"type": "string"}},
      "job_roles": {"type": "array", "items": {"type": "string"}},
      "learning_pathway": {"type": "string"},
      "salary_expectations_inr": {"type": "string"}
    }
  }
}`

var recommendationSchemaLoader = gojsonschema.NewStringLoader(recommendationSchema)

// ShapeIssues lists how a parsed reply deviates from the requested shape.
// An empty result means the reply matches.
func ShapeIssues(reply []byte) ([]string, error) {
	result, err := gojsonschema.Validate(recommendationSchemaLoader, gojsonschema.NewBytesLoader(reply))
	if err != nil {
		return nil, fmt.Errorf("validate reply shape: %w", err)
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, strings.TrimSpace(desc.String()))
	}
	return issues, nil
}
