package core

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"termin/internal/model"
)

// ExportText serializes the full export payload as pretty-printed JSON.
func (s *Service) ExportText() (string, error) {
	payload := BuildExportPayload(s.store.Get(), s.now().UnixMilli())
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ApplyImportPayload normalizes the payload, deep-merges its
// preferences over the defaults, and replaces the entire store in one
// atomic commit. It does not validate: callers are expected to have run
// ValidateImportPayload and confirmed the destructive replace.
func (s *Service) ApplyImportPayload(payload any) model.AppState {
	normalized := NormalizeImportPayload(payload)

	prefs := model.DefaultPreferences()
	if len(normalized.Preferences) > 0 {
		// Decoding into the defaults-initialized value overlays only
		// the keys present, including the nested option groups.
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &prefs,
			WeaklyTypedInput: true,
		})
		if err == nil {
			_ = dec.Decode(normalized.Preferences)
		}
	}

	next := model.AppState{
		Appointments: normalized.Appointments,
		Categories:   normalized.Categories,
		Preferences:  prefs,
	}
	s.store.Set(next)
	return next
}

// ResetAllData restores the built-in defaults.
func (s *Service) ResetAllData() {
	s.store.Reset()
}
