package main

import (
	"testing"
)

func TestHistogram(t *testing.T) {
	depths := []int{1, 3, 3, 5}

	counts := histogram(depths, 0)
	if len(counts) != 6 {
		t.Fatalf("histogram should run from 0 through the max depth, got %d bins", len(counts))
	}
	if counts[0] != 0 || counts[1] != 1 || counts[3] != 2 || counts[5] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}

	counts = histogram(depths, 3)
	if len(counts) != 4 {
		t.Fatalf("histogram should truncate at maxDepth, got %d bins", len(counts))
	}
	if counts[3] != 2 {
		t.Errorf("unexpected counts %v", counts)
	}
}
