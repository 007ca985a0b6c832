package mapforge

import "testing"

func TestBuildPipelineProducesVerticesAndCells(t *testing.T) {
	data, err := BuildPipeline(sampleMap, PipelineOptions{ColorSeed: 1})
	if err != nil {
		t.Fatalf("BuildPipeline: %v", err)
	}
	if len(data.Vertices) == 0 {
		t.Error("expected a non-empty triangulated vertex buffer")
	}
	if len(data.Vertices)%3 != 0 {
		t.Errorf("vertex count %d is not a multiple of 3 (triangle list)", len(data.Vertices))
	}
	if data.BSPRoot == nil {
		t.Error("expected a non-nil BSP root")
	}
	if len(data.Cells) == 0 {
		t.Error("expected at least one convex cell")
	}
}

func TestBuildPipelineDeterministicWithSameSeed(t *testing.T) {
	a, err := BuildPipeline(sampleMap, PipelineOptions{ColorSeed: 42})
	if err != nil {
		t.Fatalf("BuildPipeline a: %v", err)
	}
	b, err := BuildPipeline(sampleMap, PipelineOptions{ColorSeed: 42})
	if err != nil {
		t.Fatalf("BuildPipeline b: %v", err)
	}
	if len(a.Vertices) != len(b.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Vertices), len(b.Vertices))
	}
	for i := range a.Vertices {
		if a.Vertices[i].Color != b.Vertices[i].Color {
			t.Fatalf("vertex %d color differs between identical-seed runs: %v vs %v", i, a.Vertices[i].Color, b.Vertices[i].Color)
		}
	}
}

func TestBuildPipelineEmptyMapIsInvariantViolation(t *testing.T) {
	_, err := BuildPipeline("", PipelineOptions{})
	if err == nil {
		t.Fatal("expected an error for a map with no entities")
	}
	if _, ok := err.(*InvariantViolationError); !ok {
		t.Errorf("got %T, want *InvariantViolationError", err)
	}
}
