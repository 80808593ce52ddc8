// Package annotations holds the per-file annotation snapshot the graph
// builder consumes: AI-generated summaries and Docker-usage analyses,
// produced by an external annotation service. The store is read-only after
// construction; a fresh snapshot replaces it on every load cycle.
package annotations

import (
	"sort"
	"strings"
)

// knownPrefixes are the origin tags an annotation service may attach to
// file keys. They are stripped once at ingestion so every lookup afterwards
// is a plain map access.
var knownPrefixes = []string{"github:", "local:", "gitlab:"}

// Store holds summaries and Docker analyses keyed by canonical file path.
type Store struct {
	Summaries map[string]string
	Docker    map[string]Analysis

	// Origins records the origin tag (if any) each canonical key arrived
	// with, for display.
	Origins map[string]string
}

// NewStore builds a store from raw annotation maps, canonicalizing every
// key. When two raw keys collapse to the same canonical key, the first one
// wins.
func NewStore(summaries map[string]string, docker map[string]Analysis) *Store {
	s := &Store{
		Summaries: make(map[string]string, len(summaries)),
		Docker:    make(map[string]Analysis, len(docker)),
		Origins:   make(map[string]string),
	}

	for _, key := range sortedKeys(summaries) {
		canon, origin := CanonicalKey(key)
		if _, ok := s.Summaries[canon]; ok {
			continue
		}
		s.Summaries[canon] = summaries[key]
		if origin != "" {
			s.Origins[canon] = origin
		}
	}

	for _, key := range sortedKeys(docker) {
		canon, origin := CanonicalKey(key)
		if _, ok := s.Docker[canon]; ok {
			continue
		}
		s.Docker[canon] = docker[key]
		if origin != "" {
			s.Origins[canon] = origin
		}
	}

	return s
}

// Empty returns a store with no annotations. Used when an annotation fetch
// fails: the graph still builds with file nodes only.
func Empty() *Store {
	return NewStore(nil, nil)
}

// Summary returns the summary for a file path, canonicalizing the key first.
func (s *Store) Summary(key string) (string, bool) {
	canon, _ := CanonicalKey(key)
	text, ok := s.Summaries[canon]
	return text, ok
}

// DockerAnalysis returns the Docker analysis for a file path.
func (s *Store) DockerAnalysis(key string) (Analysis, bool) {
	canon, _ := CanonicalKey(key)
	a, ok := s.Docker[canon]
	return a, ok
}

// CanonicalKey strips any known origin prefix from a file key and
// normalizes path separators. It returns the canonical path and the origin
// tag that was stripped, if any.
func CanonicalKey(key string) (canon, origin string) {
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(key, prefix) {
			origin = strings.TrimSuffix(prefix, ":")
			key = strings.TrimPrefix(key, prefix)
			break
		}
	}

	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	return key, origin
}

// ComputeStats aggregates display-only counts over the store.
func (s *Store) ComputeStats() Stats {
	stats := Stats{
		TotalFiles: len(s.Docker),
		ToolCounts: make(map[string]int),
	}

	for _, a := range s.Docker {
		if !a.HasDockerIntegration {
			continue
		}
		stats.DockerFiles++
		for _, tool := range a.DockerTools {
			stats.ToolCounts[tool]++
		}
	}

	if stats.TotalFiles > 0 {
		stats.DockerRatio = float64(stats.DockerFiles) / float64(stats.TotalFiles)
	}
	return stats
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
