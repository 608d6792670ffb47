package testutil

import (
	"sync"
	"testing"
)

func TestIDSequence_SequentialIDs(t *testing.T) {
	seq := NewIDSequence("rec")

	want := []string{"rec-001", "rec-002", "rec-003"}
	for _, w := range want {
		if got := seq.Generate(); got != w {
			t.Errorf("Generate() = %q, want %q", got, w)
		}
	}
}

func TestIDSequence_Reset(t *testing.T) {
	seq := NewIDSequence("rec")
	seq.Generate()
	seq.Generate()

	seq.Reset()

	if got := seq.Generate(); got != "rec-001" {
		t.Errorf("Generate() after Reset() = %q, want rec-001", got)
	}
}

func TestIDSequence_ConcurrentUnique(t *testing.T) {
	seq := NewIDSequence("rec")
	const goroutines = 100

	ids := make(chan string, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- seq.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, goroutines)
	for id := range ids {
		if seen[id] {
			t.Errorf("id %s generated twice", id)
		}
		seen[id] = true
	}
}
