package lib

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Walnut Coffee Table", "walnut-coffee-table"},
		{"Lamp & Shade (Set)", "lamp-and-shade-set"},
		{"  Trimmed  ", "trimmed"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.name); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestUniqueSlugFirstFree(t *testing.T) {
	got, err := UniqueSlug("Walnut Coffee Table", func(s string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("UniqueSlug() = %v", err)
	}
	if got != "walnut-coffee-table" {
		t.Fatalf("UniqueSlug() = %q, want plain slug", got)
	}
}

func TestUniqueSlugAppendsCounter(t *testing.T) {
	taken := map[string]bool{
		"walnut-coffee-table":   true,
		"walnut-coffee-table-2": true,
	}

	got, err := UniqueSlug("Walnut Coffee Table", func(s string) (bool, error) {
		return taken[s], nil
	})
	if err != nil {
		t.Fatalf("UniqueSlug() = %v", err)
	}
	if got != "walnut-coffee-table-3" {
		t.Fatalf("UniqueSlug() = %q, want %q", got, "walnut-coffee-table-3")
	}
}
