package tutor

import (
	"reflect"
	"testing"

	"github.com/priyansh/neetdost/internal/llm"
)

func TestDedupeSources_LastSeenWinsFirstPositionKept(t *testing.T) {
	in := []llm.Source{
		{URI: "uriA", Title: "t1"},
		{URI: "uriA", Title: "t2"},
		{URI: "uriB", Title: "t3"},
	}

	got := dedupeSources(in)

	want := []llm.Source{
		{URI: "uriA", Title: "t2"},
		{URI: "uriB", Title: "t3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDedupeSources_DropsIncompleteEntries(t *testing.T) {
	in := []llm.Source{
		{URI: "uriA"},              // no title
		{Title: "orphan"},          // no uri
		{URI: "uriB", Title: "ok"}, // complete
	}

	got := dedupeSources(in)

	if len(got) != 1 || got[0].URI != "uriB" {
		t.Fatalf("expected only the complete entry, got %+v", got)
	}
}

func TestDedupeSources_Empty(t *testing.T) {
	if got := dedupeSources(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestDedupeSources_PreservesDistinctOrder(t *testing.T) {
	in := []llm.Source{
		{URI: "u3", Title: "c"},
		{URI: "u1", Title: "a"},
		{URI: "u2", Title: "b"},
		{URI: "u1", Title: "a-updated"},
	}

	got := dedupeSources(in)

	if len(got) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(got))
	}
	if got[0].URI != "u3" || got[1].URI != "u1" || got[2].URI != "u2" {
		t.Fatalf("order of first appearance not preserved: %+v", got)
	}
	if got[1].Title != "a-updated" {
		t.Fatalf("expected last-seen title for u1, got %q", got[1].Title)
	}
}
