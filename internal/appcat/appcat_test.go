package appcat

import "testing"

func TestCatalogInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All() {
		if a.ID == "" || a.Name == "" {
			t.Errorf("app with empty id or name: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate app id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	total := 0
	for _, c := range AllCategories() {
		group := ByCategory(c)
		if len(group) == 0 {
			t.Errorf("category %s has no apps", c)
		}
		for _, a := range group {
			if a.Category != c {
				t.Errorf("ByCategory(%s) returned app %s with category %s", c, a.ID, a.Category)
			}
		}
		total += len(group)
	}
	if total != len(All()) {
		t.Errorf("categories cover %d apps, catalog has %d", total, len(All()))
	}
}

func TestKnown(t *testing.T) {
	if err := Known([]string{"tiktok", "youtube"}); err != nil {
		t.Errorf("Known(valid ids) = %v", err)
	}
	if err := Known([]string{"tiktok", "nope"}); err == nil {
		t.Error("Known with invalid id returned nil")
	}
}
