package study

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Version history:
//
//	1.0.0  initial layout (no findings section, description under "notes")
//	1.1.0  adds the findings list
//	2.0.0  renames "notes" to "description"
//
// Documents written before schema_version existed are treated as 1.0.0.

var currentSchema = semver.MustParse(SchemaVersion)

// Migrate upgrades raw study YAML to the current schema. It returns the
// (possibly rewritten) document bytes and whether anything changed.
// Documents from a newer major version are rejected.
func Migrate(data []byte) ([]byte, bool, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("parsing document: %w", err)
	}
	if raw == nil {
		return nil, false, fmt.Errorf("empty study document")
	}

	versionStr, _ := raw["schema_version"].(string)
	if versionStr == "" {
		versionStr = "1.0.0"
	}
	version, err := semver.NewVersion(versionStr)
	if err != nil {
		return nil, false, fmt.Errorf("invalid schema_version %q: %w", versionStr, err)
	}

	if version.Major() > currentSchema.Major() {
		return nil, false, fmt.Errorf("document schema %s is newer than supported %s", version, currentSchema)
	}
	if !version.LessThan(currentSchema) {
		return data, false, nil
	}

	if version.LessThan(semver.MustParse("1.1.0")) {
		if _, ok := raw["findings"]; !ok {
			raw["findings"] = []any{}
		}
	}
	if version.LessThan(semver.MustParse("2.0.0")) {
		if notes, ok := raw["notes"]; ok {
			if _, exists := raw["description"]; !exists {
				raw["description"] = notes
			}
			delete(raw, "notes")
		}
	}

	raw["schema_version"] = SchemaVersion
	out, err := yaml.Marshal(raw)
	if err != nil {
		return nil, false, fmt.Errorf("rewriting document: %w", err)
	}
	return out, true, nil
}
