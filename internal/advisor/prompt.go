package advisor

import (
	"fmt"

	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

// BuildPrompt embeds the profile verbatim into the counselor instructions.
func BuildPrompt(profile models.StudentProfile) string {
	return fmt.Sprintf(`Act as an expert career counselor for students in the Indian job market as of late 2025. Your advice must be practical, current, and tailored to the Indian economic landscape, referencing initiatives like 'Digital India' or the startup ecosystem where relevant.

A student has provided the following profile:
- Interests: "%s"
- Current Skills: "%s"
- Academic Stream: "%s"

Based on this profile, generate three diverse and detailed career path recommendations. For each recommendation, provide the following information in a strict JSON format within a single JSON array. Do not include any text or markdown formatting before or after the JSON array.

The required JSON structure for each object in the array is:
{
  "career_path": "The name of the career (e.g., 'Blockchain Developer')",
  "description": "A 2-3 sentence summary explaining why this career is a strong fit for the student and its relevance in India today. Mention specific Indian market trends.",
  "skills_required": ["A list of 5 essential technical and soft skills to develop"],
  "job_roles": ["A list of 3-4 specific job titles"],
  "learning_pathway": "Suggest a brief, actionable first step. For example, 'Start with an online course in Python for Data Science on SWAYAM or NPTEL' or 'Contribute to an open-source fintech project.'",
  "salary_expectations_inr": "Provide an estimated starting salary range in India (in INR Lakhs per Annum, e.g., '₹4.5 - ₹7.0 LPA') for an entry-level position."
}`, profile.Interests, profile.Skills, profile.Academics)
}
