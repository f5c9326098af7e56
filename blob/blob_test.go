package blob

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	var got []int
	if err := Load(ctx, s, "numbers", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	want := []int{3, 1, 2}
	if err := Save(ctx, s, "numbers", want); err != nil {
		t.Fatal(err)
	}

	if err := Load(ctx, s, "numbers", &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("loaded value mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if err := s.Put(ctx, "broken", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	var got []int
	if err := Load(ctx, s, "broken", &got); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestMemoryCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	data := []byte("abc")
	if err := s.Put(ctx, "k", data); err != nil {
		t.Fatal(err)
	}
	data[0] = 'x'

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Fatalf("stored value changed through caller slice: %q", got)
	}
}
