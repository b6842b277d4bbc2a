package books

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildBookFilterEmpty(t *testing.T) {
	filter := BuildBookFilter("", "")
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}
}

func TestBuildBookFilterAllGenre(t *testing.T) {
	filter := BuildBookFilter("", "All")
	if len(filter) != 0 {
		t.Errorf("genre All must not filter, got %v", filter)
	}
}

func TestBuildBookFilterGenreOnly(t *testing.T) {
	filter := BuildBookFilter("", "Fantasy")
	if filter["genre"] != "Fantasy" {
		t.Errorf("genre = %v, want Fantasy", filter["genre"])
	}
	if _, ok := filter["$or"]; ok {
		t.Error("no text search requested, but $or present")
	}
}

func TestBuildBookFilterSearch(t *testing.T) {
	filter := BuildBookFilter("dune", "")

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("$or missing or wrong type: %v", filter["$or"])
	}
	if len(or) != 3 {
		t.Fatalf("expected 3 search fields, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, clause := range or {
		for field, cond := range clause {
			fields[field] = true
			regex, ok := cond.(bson.M)
			if !ok {
				t.Fatalf("field %s: condition not a document", field)
			}
			if regex["$regex"] != "dune" {
				t.Errorf("field %s: $regex = %v, want dune", field, regex["$regex"])
			}
			if regex["$options"] != "i" {
				t.Errorf("field %s: search must be case-insensitive", field)
			}
		}
	}
	for _, want := range []string{"title", "author", "description"} {
		if !fields[want] {
			t.Errorf("search does not cover %s", want)
		}
	}
}

func TestBuildBookFilterSearchAndGenre(t *testing.T) {
	filter := BuildBookFilter("herbert", "Science Fiction")
	if filter["genre"] != "Science Fiction" {
		t.Errorf("genre = %v", filter["genre"])
	}
	if _, ok := filter["$or"]; !ok {
		t.Error("$or missing with combined filters")
	}
}
