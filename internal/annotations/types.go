package annotations

// DockerAPI describes one detected Docker API usage inside a file.
// Upstream caches have used both "apiType" and "name" for the capability
// name over time, so both are accepted.
type DockerAPI struct {
	APIType     string `json:"apiType,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Line        int    `json:"line,omitempty"`
	CodeSnippet string `json:"codeSnippet,omitempty"`
}

// CapabilityName returns the capability name of the entry, preferring the
// newer apiType field. Empty when the entry carries neither.
func (a DockerAPI) CapabilityName() string {
	if a.APIType != "" {
		return a.APIType
	}
	return a.Name
}

// Analysis is the Docker analysis result for a single file.
type Analysis struct {
	HasDockerIntegration bool        `json:"hasDockerIntegration"`
	DockerAPIs           []DockerAPI `json:"dockerApis,omitempty"`
	DockerTools          []string    `json:"dockerTools,omitempty"`
	Summary              string      `json:"summary,omitempty"`
}

// Stats aggregates annotation counts for display. Not consumed by any
// graph logic.
type Stats struct {
	TotalFiles  int            `json:"total_files"`
	DockerFiles int            `json:"docker_files"`
	DockerRatio float64        `json:"docker_ratio"`
	ToolCounts  map[string]int `json:"tool_counts,omitempty"`
}
