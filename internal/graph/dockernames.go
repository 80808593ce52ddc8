package graph

// friendlyDockerNames translates raw capability names reported by the
// annotation service into display names. Unknown names fall back to the raw
// name unchanged.
var friendlyDockerNames = map[string]string{
	"create":        "Create Container",
	"start":         "Start Container",
	"stop":          "Stop Container",
	"restart":       "Restart Container",
	"remove":        "Remove Container",
	"inspect":       "Inspect Container",
	"exec":          "Exec in Container",
	"logs":          "Container Logs",
	"list":          "List Containers",
	"read":          "Read Container State",
	"build":         "Build Image",
	"pull":          "Pull Image",
	"push":          "Push Image",
	"tag":           "Tag Image",
	"network":       "Docker Network",
	"volume":        "Docker Volume",
	"compose":       "Docker Compose",
	"docker-cli":    "Docker CLI",
	"dockerfile":    "Dockerfile",
	"docker-api":    "Docker Engine API",
	"health-check":  "Container Health Check",
	"orchestration": "Container Orchestration",
}

// FriendlyDockerName returns the display name for a raw capability name.
func FriendlyDockerName(raw string) string {
	if friendly, ok := friendlyDockerNames[raw]; ok {
		return friendly
	}
	return raw
}
