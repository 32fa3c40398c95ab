// Package config persists named selection presets so a grower can save a
// reservoir setup once and recall it later.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gardenpip/dosing"
)

// Preset is one saved selection. JSON field names match the preset files
// written by earlier versions of the app.
type Preset struct {
	Manufacturer  string  `json:"manufacturer"`
	Series        string  `json:"series"`
	Stage         string  `json:"stage"`
	PlantCategory string  `json:"plant"`
	Unit          string  `json:"unit"`
	Volume        float64 `json:"volume"`
	CalMag        string  `json:"calmag,omitempty"`
}

// Selection converts the preset into a calculation request.
func (p Preset) Selection() dosing.Selection {
	return dosing.Selection{
		Manufacturer:  p.Manufacturer,
		Series:        p.Series,
		Stage:         p.Stage,
		PlantCategory: p.PlantCategory,
		Unit:          p.Unit,
		Volume:        p.Volume,
		CalMag:        p.CalMag,
	}
}

// FromSelection builds a preset from a calculation request.
func FromSelection(sel dosing.Selection) Preset {
	return Preset{
		Manufacturer:  sel.Manufacturer,
		Series:        sel.Series,
		Stage:         sel.Stage,
		PlantCategory: sel.PlantCategory,
		Unit:          sel.Unit,
		Volume:        sel.Volume,
		CalMag:        sel.CalMag,
	}
}

// Load reads the preset map at path. A missing or unreadable file reads as
// an empty map; only a genuinely present-but-unparsable situation is not
// distinguished, matching the forgiving behavior of the original settings
// screen.
func Load(path string) map[string]Preset {
	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]Preset{}
	}
	var presets map[string]Preset
	if err := json.Unmarshal(raw, &presets); err != nil || presets == nil {
		return map[string]Preset{}
	}
	return presets
}

// Save writes the full preset map to path, creating parent directories as
// needed.
func Save(path string, presets map[string]Preset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating preset dir %s: %w", dir, err)
		}
	}
	raw, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing presets %s: %w", path, err)
	}
	return nil
}

// SavePreset stores one named preset.
func SavePreset(path, name string, p Preset) error {
	presets := Load(path)
	presets[name] = p
	return Save(path, presets)
}

// DeletePreset removes one named preset. Deleting a name that does not
// exist is not an error.
func DeletePreset(path, name string) error {
	presets := Load(path)
	if _, ok := presets[name]; !ok {
		return nil
	}
	delete(presets, name)
	return Save(path, presets)
}

// Names returns the stored preset names, sorted.
func Names(path string) []string {
	presets := Load(path)
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
