package search

import (
	"testing"

	"github.com/yc815/depviz/internal/graph"
)

func indexOf(ids ...string) *Index {
	ns := make([]graph.Node, len(ids))
	for i, id := range ids {
		ns[i] = graph.Node{ID: id, Label: id}
	}
	return Build(ns)
}

func TestQueryRanksCloserMatchFirst(t *testing.T) {
	ix := indexOf("Header.tsx", "Footer.tsx")

	matches := ix.Query("head")
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].NodeID != "Header.tsx" {
		t.Errorf("top match = %q, want Header.tsx", matches[0].NodeID)
	}
	for _, m := range matches[1:] {
		if m.NodeID == "Footer.tsx" && m.Score >= matches[0].Score {
			t.Error("Footer.tsx ranked at or above Header.tsx")
		}
	}
}

func TestQueryNoSubsequenceNoMatch(t *testing.T) {
	ix := indexOf("Footer.tsx")
	if matches := ix.Query("header"); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func TestQueryEmptyTerm(t *testing.T) {
	ix := indexOf("a.ts")
	if matches := ix.Query(""); matches != nil {
		t.Errorf("empty term should match nothing, got %v", matches)
	}
}

func TestQueryDedupesPathAndLabel(t *testing.T) {
	ix := Build([]graph.Node{
		{ID: "src/components/Header.tsx", Label: "Header.tsx"},
	})

	matches := ix.Query("Header")
	if len(matches) != 1 {
		t.Fatalf("expected 1 deduped match, got %d: %v", len(matches), matches)
	}
	if matches[0].NodeID != "src/components/Header.tsx" {
		t.Errorf("match = %q", matches[0].NodeID)
	}
}

func TestBestMatch(t *testing.T) {
	ix := indexOf("Header.tsx", "Footer.tsx")

	id, ok := ix.BestMatch("foot")
	if !ok || id != "Footer.tsx" {
		t.Errorf("BestMatch(foot) = %q, %v", id, ok)
	}

	if _, ok := ix.BestMatch("zzzzqqqq"); ok {
		t.Error("expected no best match for garbage term")
	}
}

func TestBuildEmpty(t *testing.T) {
	ix := Build(nil)
	if matches := ix.Query("anything"); len(matches) != 0 {
		t.Errorf("empty index matched: %v", matches)
	}
}
