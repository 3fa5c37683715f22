package core

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"termin/internal/model"
	"termin/internal/utils"
)

// ExportVersion is the only payload version import accepts.
const ExportVersion = 2

// ExportPayload is the versioned import/export file format.
type ExportPayload struct {
	Version      int                 `json:"version"`
	ExportedAt   int64               `json:"exportedAt"`
	Appointments []model.Appointment `json:"appointments"`
	Categories   []model.Category    `json:"categories"`
	Preferences  model.Preferences   `json:"preferences"`
}

// ImportValidation collects every structural violation found in a
// payload; nothing short-circuits.
type ImportValidation struct {
	Valid  bool
	Errors []string
}

// NormalizedPayload is the best-effort typed repair of an import
// payload. Preferences stay raw so the apply step can merge them over
// defaults.
type NormalizedPayload struct {
	Appointments []model.Appointment
	Categories   []model.Category
	Preferences  map[string]any
}

// BuildExportPayload wraps the current data for export. Collections are
// always present, never null.
func BuildExportPayload(state model.AppState, exportedAt int64) ExportPayload {
	appointments := state.Appointments
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	categories := state.Categories
	if categories == nil {
		categories = []model.Category{}
	}
	return ExportPayload{
		Version:      ExportVersion,
		ExportedAt:   exportedAt,
		Appointments: appointments,
		Categories:   categories,
		Preferences:  state.Preferences,
	}
}

// ValidateImportPayload structurally checks a decoded JSON payload and
// collects every violation into one error list.
func ValidateImportPayload(payload any) ImportValidation {
	obj, ok := payload.(map[string]any)
	if !ok || obj == nil {
		return ImportValidation{Errors: []string{"File is not valid JSON data."}}
	}

	var errs []string
	categoryIDs := map[string]bool{}

	rawAppointments, appointmentsOK := obj["appointments"].([]any)
	if !appointmentsOK {
		errs = append(errs, "Appointments data is missing.")
	}
	rawCategories, categoriesOK := obj["categories"].([]any)
	if !categoriesOK {
		errs = append(errs, "Categories data is missing.")
	}
	if version, ok := obj["version"].(float64); !ok || version != ExportVersion {
		errs = append(errs, "Unsupported export version.")
	}

	if categoriesOK {
		for _, raw := range rawCategories {
			item, ok := raw.(map[string]any)
			if !ok {
				errs = append(errs, "Each category must be an object.")
				continue
			}
			id, idOK := item["id"].(string)
			if !idOK || id == "" {
				errs = append(errs, "Category id is required.")
			}
			if name, ok := item["name"].(string); !ok || name == "" {
				errs = append(errs, "Category name is required.")
			}
			if color, ok := item["color"].(string); !ok || !model.ValidColor(color) {
				errs = append(errs, "Category color is invalid.")
			}
			if idOK {
				categoryIDs[id] = true
			}
		}
	}

	if appointmentsOK {
		for _, raw := range rawAppointments {
			item, ok := raw.(map[string]any)
			if !ok {
				errs = append(errs, "Each appointment must be an object.")
				continue
			}
			if title, ok := item["title"].(string); !ok || title == "" {
				errs = append(errs, "Appointment title is required.")
			}
			date, dateOK := item["date"].(string)
			if !dateOK || !utils.IsValidDate(date) {
				errs = append(errs, fmt.Sprintf("Appointment date %q is invalid.", fmt.Sprint(item["date"])))
			}
			start, startOK := item["startTime"].(string)
			if !startOK || !utils.IsValidTime(start) {
				errs = append(errs, "Appointment start time is invalid.")
			}
			end, _ := item["endTime"].(string)
			if end != "" && !utils.IsValidTime(end) {
				errs = append(errs, "Appointment end time is invalid.")
			}
			if end != "" && utils.IsValidTime(start) && utils.IsValidTime(end) &&
				utils.CompareTimes(start, end) >= 0 {
				errs = append(errs, "Appointment end time must be after start time.")
			}
			if categoryID, ok := item["categoryId"].(string); !ok || categoryID == "" {
				errs = append(errs, "Appointment categoryId is required.")
			} else if len(categoryIDs) > 0 && !categoryIDs[categoryID] {
				errs = append(errs, "Appointment categoryId does not exist.")
			}
			if status, ok := item["status"].(string); !ok || !model.ValidStatus(status) {
				errs = append(errs, "Appointment status is invalid.")
			}
			if _, ok := item["createdAt"].(float64); !ok {
				errs = append(errs, "Appointment createdAt is invalid.")
			}
			if _, ok := item["updatedAt"].(float64); !ok {
				errs = append(errs, "Appointment updatedAt is invalid.")
			}
		}
	}

	return ImportValidation{Valid: len(errs) == 0, Errors: errs}
}

// NormalizeImportPayload repairs a payload without validating it:
// items are decoded weakly into typed records, unknown or missing
// category references are coerced to "general", and a synthetic General
// category is injected when none were supplied. The result never
// aliases the input.
func NormalizeImportPayload(payload any) NormalizedPayload {
	obj, _ := payload.(map[string]any)

	np := NormalizedPayload{
		Appointments: decodeItems[model.Appointment](obj["appointments"]),
		Categories:   decodeItems[model.Category](obj["categories"]),
	}
	if prefs, ok := obj["preferences"].(map[string]any); ok {
		np.Preferences = prefs
	}

	known := make(map[string]bool, len(np.Categories))
	for _, c := range np.Categories {
		known[c.ID] = true
	}
	for i := range np.Appointments {
		if !known[np.Appointments[i].CategoryID] {
			np.Appointments[i].CategoryID = "general"
		}
	}
	if len(np.Categories) == 0 {
		np.Categories = append(np.Categories, model.Category{
			ID: "general", Name: "General", Color: "blue",
		})
	}
	return np
}

// decodeItems converts a raw JSON array into typed records, tolerating
// wrong or missing fields. Decoding uses the same weakly typed
// mapstructure pass viper relies on.
func decodeItems[T any](v any) []T {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var record T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &record,
			WeaklyTypedInput: true,
		})
		if err != nil {
			continue
		}
		_ = dec.Decode(item)
		out = append(out, record)
	}
	return out
}
