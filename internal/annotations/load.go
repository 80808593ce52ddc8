package annotations

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSummaries reads a summaries cache (file key -> summary text).
// A missing file yields an empty map.
func LoadSummaries(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read summaries: %w", err)
	}

	var summaries map[string]string
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("unmarshal summaries: %w", err)
	}
	if summaries == nil {
		summaries = make(map[string]string)
	}
	return summaries, nil
}

// LoadDocker reads a Docker analysis cache (file key -> analysis).
// A missing file yields an empty map.
func LoadDocker(path string) (map[string]Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]Analysis), nil
		}
		return nil, fmt.Errorf("read docker analysis: %w", err)
	}

	var analyses map[string]Analysis
	if err := json.Unmarshal(data, &analyses); err != nil {
		return nil, fmt.Errorf("unmarshal docker analysis: %w", err)
	}
	if analyses == nil {
		analyses = make(map[string]Analysis)
	}
	return analyses, nil
}

// combinedEntry is one record of the combined analysis artifact, which folds
// the summary into the same object as the Docker fields.
type combinedEntry struct {
	Analysis
	FileType     string   `json:"fileType,omitempty"`
	KeyFunctions []string `json:"keyFunctions,omitempty"`
}

// LoadCombined reads a combined analysis artifact and splits it into the
// summaries and Docker maps the store expects. Older deployments only ship
// this single file instead of the split caches.
func LoadCombined(path string) (map[string]string, map[string]Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), make(map[string]Analysis), nil
		}
		return nil, nil, fmt.Errorf("read combined analysis: %w", err)
	}

	var combined map[string]combinedEntry
	if err := json.Unmarshal(data, &combined); err != nil {
		return nil, nil, fmt.Errorf("unmarshal combined analysis: %w", err)
	}

	summaries := make(map[string]string, len(combined))
	docker := make(map[string]Analysis, len(combined))
	for key, entry := range combined {
		if entry.Summary != "" {
			summaries[key] = entry.Summary
		}
		docker[key] = entry.Analysis
	}
	return summaries, docker, nil
}
