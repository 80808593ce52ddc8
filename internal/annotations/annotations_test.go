package annotations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		key        string
		wantCanon  string
		wantOrigin string
	}{
		{"github:src/app/page.tsx", "src/app/page.tsx", "github"},
		{"local:lib/docker.ts", "lib/docker.ts", "local"},
		{"src/app/page.tsx", "src/app/page.tsx", ""},
		{"./src/utils/helper.ts", "src/utils/helper.ts", ""},
		{"github:./src/a.ts", "src/a.ts", "github"},
		{`src\components\Header.tsx`, "src/components/Header.tsx", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			canon, origin := CanonicalKey(tt.key)
			if canon != tt.wantCanon {
				t.Errorf("CanonicalKey(%q) canon = %q, want %q", tt.key, canon, tt.wantCanon)
			}
			if origin != tt.wantOrigin {
				t.Errorf("CanonicalKey(%q) origin = %q, want %q", tt.key, origin, tt.wantOrigin)
			}
		})
	}
}

func TestNewStoreCanonicalizesKeys(t *testing.T) {
	store := NewStore(
		map[string]string{"github:a.ts": "summary a"},
		map[string]Analysis{"github:a.ts": {HasDockerIntegration: true}},
	)

	if _, ok := store.Summaries["github:a.ts"]; ok {
		t.Error("raw prefixed key survived ingestion")
	}
	if got, ok := store.Summary("a.ts"); !ok || got != "summary a" {
		t.Errorf("Summary(a.ts) = %q, %v", got, ok)
	}
	if a, ok := store.DockerAnalysis("a.ts"); !ok || !a.HasDockerIntegration {
		t.Errorf("DockerAnalysis(a.ts) = %+v, %v", a, ok)
	}
	if store.Origins["a.ts"] != "github" {
		t.Errorf("origin = %q, want github", store.Origins["a.ts"])
	}
}

func TestNewStoreDuplicateCanonicalFirstWins(t *testing.T) {
	// "a.ts" sorts before "github:a.ts", so the unprefixed entry wins.
	store := NewStore(map[string]string{
		"a.ts":        "first",
		"github:a.ts": "second",
	}, nil)

	if got, _ := store.Summary("a.ts"); got != "first" {
		t.Errorf("Summary(a.ts) = %q, want first", got)
	}
}

func TestCapabilityName(t *testing.T) {
	tests := []struct {
		api  DockerAPI
		want string
	}{
		{DockerAPI{APIType: "read"}, "read"},
		{DockerAPI{Name: "create"}, "create"},
		{DockerAPI{APIType: "read", Name: "create"}, "read"},
		{DockerAPI{}, ""},
	}
	for _, tt := range tests {
		if got := tt.api.CapabilityName(); got != tt.want {
			t.Errorf("CapabilityName(%+v) = %q, want %q", tt.api, got, tt.want)
		}
	}
}

func TestLoadDockerMissingFile(t *testing.T) {
	docker, err := LoadDocker(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadDocker: %v", err)
	}
	if len(docker) != 0 {
		t.Errorf("expected empty map, got %d entries", len(docker))
	}
}

func TestLoadDocker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docker-analysis.json")
	content := `{
		"github:a.ts": {
			"hasDockerIntegration": true,
			"dockerApis": [{"apiType": "read", "description": "x"}],
			"dockerTools": ["compose"],
			"summary": "s"
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	docker, err := LoadDocker(path)
	if err != nil {
		t.Fatalf("LoadDocker: %v", err)
	}
	a, ok := docker["github:a.ts"]
	if !ok {
		t.Fatal("missing entry for github:a.ts")
	}
	if !a.HasDockerIntegration || len(a.DockerAPIs) != 1 || len(a.DockerTools) != 1 {
		t.Errorf("unexpected analysis: %+v", a)
	}
}

func TestLoadCombinedSplitsSummaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined-analysis.json")
	content := `{
		"a.ts": {
			"hasDockerIntegration": false,
			"summary": "does things",
			"fileType": "component",
			"keyFunctions": ["render"]
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	summaries, docker, err := LoadCombined(path)
	if err != nil {
		t.Fatalf("LoadCombined: %v", err)
	}
	if summaries["a.ts"] != "does things" {
		t.Errorf("summary = %q", summaries["a.ts"])
	}
	if _, ok := docker["a.ts"]; !ok {
		t.Error("missing docker entry for a.ts")
	}
}

func TestComputeStats(t *testing.T) {
	store := NewStore(nil, map[string]Analysis{
		"a.ts": {HasDockerIntegration: true, DockerTools: []string{"compose", "docker-cli"}},
		"b.ts": {HasDockerIntegration: true, DockerTools: []string{"compose"}},
		"c.ts": {HasDockerIntegration: false},
	})

	stats := store.ComputeStats()
	if stats.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", stats.TotalFiles)
	}
	if stats.DockerFiles != 2 {
		t.Errorf("DockerFiles = %d, want 2", stats.DockerFiles)
	}
	if stats.ToolCounts["compose"] != 2 {
		t.Errorf("compose count = %d, want 2", stats.ToolCounts["compose"])
	}
	if stats.DockerRatio < 0.66 || stats.DockerRatio > 0.67 {
		t.Errorf("DockerRatio = %f", stats.DockerRatio)
	}
}
