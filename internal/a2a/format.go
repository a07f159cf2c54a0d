package a2a

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

// FormatRecommendations renders a set as markdown for chat clients.
func FormatRecommendations(profile models.StudentProfile, set *models.RecommendationSet) string {
	items, err := set.Items()
	if err != nil {
		return fmt.Sprintf("# Career Recommendations\n\n```json\n%s\n```\n", string(set.Raw()))
	}
	if len(items) == 0 {
		return "No career recommendations generated."
	}

	var builder strings.Builder
	builder.WriteString("# Career Recommendations\n\n")
	builder.WriteString(fmt.Sprintf("**Interests:** %s  \n**Skills:** %s  \n**Academics:** %s\n", profile.Interests, profile.Skills, profile.Academics))

	for i, rec := range items {
		builder.WriteString("\n---\n\n")
		builder.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, rec.CareerPath))
		if rec.Description != "" {
			builder.WriteString(rec.Description + "\n")
		}

		if len(rec.SkillsRequired) > 0 {
			builder.WriteString("\n**Skills Required:**\n")
			for _, s := range rec.SkillsRequired {
				builder.WriteString(fmt.Sprintf("- %s\n", strings.TrimSpace(s)))
			}
		}

		if len(rec.JobRoles) > 0 {
			builder.WriteString("\n**Job Roles:**\n")
			for _, r := range rec.JobRoles {
				builder.WriteString(fmt.Sprintf("- %s\n", strings.TrimSpace(r)))
			}
		}

		if rec.LearningPathway != "" {
			builder.WriteString(fmt.Sprintf("\n**First Step:** %s\n", rec.LearningPathway))
		}
		if rec.SalaryExpectationsINR != "" {
			builder.WriteString(fmt.Sprintf("\n**Starting Salary:** %s\n", rec.SalaryExpectationsINR))
		}
	}

	return builder.String()
}
