package graph

import "testing"

func TestInferCategory(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"src/pages/index.tsx", CategoryPage},
		{"src/app/dashboard/page.tsx", CategoryPage},
		{"src/components/Header.tsx", CategoryComponent},
		{"src/utils/format.ts", CategoryUtil},
		{"src/lib/docker.ts", CategoryLibrary},
		{"src/hooks/useAuth.ts", CategoryHook},
		{"src/useWindowSize.ts", CategoryHook},
		{"src/types/api.d.ts", CategoryType},
		{"src/global.d.ts", CategoryType},
		{"src/api/users.ts", CategoryAPI},
		{"a.ts", CategoryOther},
		{"README.md", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := InferCategory(tt.path); got != tt.want {
				t.Errorf("InferCategory(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestInferCategoryPriority(t *testing.T) {
	// A path matching several rules takes the highest-priority one.
	if got := InferCategory("src/pages/api/users.ts"); got != CategoryPage {
		t.Errorf("pages beats api, got %s", got)
	}
	if got := InferCategory("src/components/useTable.tsx"); got != CategoryComponent {
		t.Errorf("components beats use-prefix, got %s", got)
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		id       string
		explicit string
		want     Category
	}{
		// Known explicit category wins over inference.
		{"src/components/Header.tsx", "page", CategoryPage},
		// Unknown explicit category falls back to inference.
		{"src/components/Header.tsx", "widget", CategoryComponent},
		{"a.ts", "", CategoryOther},
	}
	for _, tt := range tests {
		if got := ResolveCategory(tt.id, tt.explicit); got != tt.want {
			t.Errorf("ResolveCategory(%q, %q) = %s, want %s", tt.id, tt.explicit, got, tt.want)
		}
	}
}

func TestFriendlyDockerName(t *testing.T) {
	if got := FriendlyDockerName("compose"); got != "Docker Compose" {
		t.Errorf("compose = %q", got)
	}
	if got := FriendlyDockerName("some-exotic-api"); got != "some-exotic-api" {
		t.Errorf("unknown name should pass through, got %q", got)
	}
}
