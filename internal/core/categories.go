package core

import (
	"fmt"
	"regexp"
	"strings"

	"termin/internal/model"
	"termin/internal/utils"
)

var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// buildCategoryID slugifies name and resolves collisions against
// existing ids with -2, -3, ... suffixes.
func buildCategoryID(name string, existing map[string]bool) string {
	base := strings.ToLower(utils.NormalizeCategoryName(name))
	base = strings.Trim(slugRE.ReplaceAllString(base, "-"), "-")
	if base == "" {
		base = "category"
	}
	id := base
	for n := 2; existing[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// AddCategory normalizes the name, rejects empty names, unknown colors,
// and case-insensitive duplicates, then appends the new category.
func (s *Service) AddCategory(name, color string) CategoryResult {
	cleaned := utils.NormalizeCategoryName(name)
	if cleaned == "" {
		return CategoryResult{Error: "Category name is required."}
	}
	if !model.ValidColor(color) {
		return CategoryResult{Error: "Select a valid color."}
	}

	state := s.store.Get()
	for _, c := range state.Categories {
		if strings.EqualFold(c.Name, cleaned) {
			return CategoryResult{Error: "Category already exists."}
		}
	}

	existing := make(map[string]bool, len(state.Categories))
	for _, c := range state.Categories {
		existing[c.ID] = true
	}
	category := model.Category{
		ID:    buildCategoryID(cleaned, existing),
		Name:  cleaned,
		Color: color,
	}

	s.store.Update(func(draft model.AppState) model.AppState {
		draft.Categories = append(draft.Categories, category)
		return draft
	})
	return CategoryResult{OK: true, Value: category}
}

// CategoryByID looks id up in categories.
func CategoryByID(categories []model.Category, id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
