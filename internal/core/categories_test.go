package core

import "testing"

func TestAddCategory(t *testing.T) {
	svc, _, _ := newTestService()

	result := svc.AddCategory("Gym", "teal")
	if !result.OK {
		t.Fatalf("add failed: %s", result.Error)
	}
	if result.Value.ID != "gym" || result.Value.Name != "Gym" || result.Value.Color != "teal" {
		t.Fatalf("category = %+v", result.Value)
	}

	if result := svc.AddCategory("Gym", "blue"); result.OK || result.Error != "Category already exists." {
		t.Fatalf("duplicate accepted: %+v", result)
	}
	// Duplicates are caught case-insensitively on the collapsed name.
	if result := svc.AddCategory("  gYm ", "blue"); result.OK || result.Error != "Category already exists." {
		t.Fatalf("duplicate accepted: %+v", result)
	}

	// Distinct name whose slug collides with the taken id gets a suffix.
	result = svc.AddCategory("Gym!!", "blue")
	if !result.OK {
		t.Fatalf("add failed: %s", result.Error)
	}
	if result.Value.ID != "gym-2" || result.Value.Name != "Gym!!" {
		t.Fatalf("category = %+v", result.Value)
	}
}

func TestAddCategoryValidation(t *testing.T) {
	svc, _, _ := newTestService()

	if result := svc.AddCategory("   ", "blue"); result.OK || result.Error != "Category name is required." {
		t.Fatalf("result = %+v", result)
	}
	if result := svc.AddCategory("Gym", "mauve"); result.OK || result.Error != "Select a valid color." {
		t.Fatalf("result = %+v", result)
	}
	if got := len(svc.store.Get().Categories); got != 5 {
		t.Fatalf("failed adds changed categories, len = %d", got)
	}
}

func TestAddCategoryNameCollapse(t *testing.T) {
	svc, _, _ := newTestService()

	result := svc.AddCategory("  Book   Club  ", "pink")
	if !result.OK {
		t.Fatalf("add failed: %s", result.Error)
	}
	if result.Value.Name != "Book Club" || result.Value.ID != "book-club" {
		t.Fatalf("category = %+v", result.Value)
	}
}

func TestBuildCategoryID(t *testing.T) {
	cases := []struct {
		name     string
		existing map[string]bool
		want     string
	}{
		{"Gym", nil, "gym"},
		{"Book Club", nil, "book-club"},
		{"--Hello--", nil, "hello"},
		{"!!!", nil, "category"},
		{"Gym", map[string]bool{"gym": true}, "gym-2"},
		{"Gym", map[string]bool{"gym": true, "gym-2": true}, "gym-3"},
	}
	for _, c := range cases {
		if got := buildCategoryID(c.name, c.existing); got != c.want {
			t.Errorf("buildCategoryID(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestCategoryByID(t *testing.T) {
	svc, _, _ := newTestService()

	category, ok := CategoryByID(svc.store.Get().Categories, "doctors")
	if !ok || category.Name != "Doctors" {
		t.Fatalf("lookup = %+v, %v", category, ok)
	}
	if _, ok := CategoryByID(svc.store.Get().Categories, "missing"); ok {
		t.Fatal("unknown id found")
	}
}
