package session

import (
	"context"

	"github.com/yc815/depviz/internal/annotations"
	"github.com/yc815/depviz/internal/elements"
)

// FileElementSource reads the scanner artifact from disk, applying the
// configured ignore globs.
type FileElementSource struct {
	Path   string
	Ignore []string
}

// Elements implements ElementSource.
func (f FileElementSource) Elements(_ context.Context) ([]elements.Element, error) {
	elems, err := elements.Load(f.Path)
	if err != nil {
		return nil, err
	}
	return elements.Filter(elems, f.Ignore), nil
}

// FileAnnotationSource reads annotation caches from disk. When the split
// summaries/docker caches are both absent it falls back to the combined
// artifact, which older deployments ship instead.
type FileAnnotationSource struct {
	SummariesPath string
	DockerPath    string
	CombinedPath  string
}

// Annotations implements AnnotationSource.
func (f FileAnnotationSource) Annotations(_ context.Context) (*annotations.Store, error) {
	summaries, err := annotations.LoadSummaries(f.SummariesPath)
	if err != nil {
		return nil, err
	}
	docker, err := annotations.LoadDocker(f.DockerPath)
	if err != nil {
		return nil, err
	}

	if len(summaries) == 0 && len(docker) == 0 && f.CombinedPath != "" {
		summaries, docker, err = annotations.LoadCombined(f.CombinedPath)
		if err != nil {
			return nil, err
		}
	}
	return annotations.NewStore(summaries, docker), nil
}
