package a2a

// AgentCard advertises the advisor to A2A clients.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Capabilities       Capabilities      `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []Skill           `json:"skills"`
	Endpoints          map[string]string `json:"endpoints"`
}

type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples"`
}

const cardVersion = "1.0.0"

// NewAgentCard describes the agent served at baseURL.
func NewAgentCard(baseURL string) AgentCard {
	return AgentCard{
		Name:        "Career Advisor Agent",
		Description: "Suggests three career paths for a student in the Indian job market from their interests, skills and academic stream.",
		URL:         baseURL + "/a2a/advisor",
		Version:     cardVersion,
		Capabilities: Capabilities{
			Streaming:              false,
			PushNotifications:      false,
			StateTransitionHistory: false,
		},
		DefaultInputModes:  []string{"text", "data"},
		DefaultOutputModes: []string{"text", "data"},
		Skills: []Skill{
			{
				ID:          "career-recommendations",
				Name:        "Career recommendations",
				Description: "Returns career path, description, required skills, job roles, a learning first step and an entry-level salary range in INR.",
				Tags:        []string{"career", "education", "india"},
				Examples: []string{
					"interests: AI, skills: Python, academics: Computer Science",
				},
			},
		},
		Endpoints: map[string]string{
			"a2a":    baseURL + "/a2a/advisor",
			"advice": baseURL + "/get-advice",
			"health": baseURL + "/health",
		},
	}
}
