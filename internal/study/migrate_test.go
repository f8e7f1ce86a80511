package study

import (
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"
)

func TestMigrate(t *testing.T) {
	t.Run("current version untouched", func(t *testing.T) {
		doc := "schema_version: " + SchemaVersion + "\nid: a\nname: A\n"
		out, changed, err := Migrate([]byte(doc))
		if err != nil {
			t.Fatalf("Migrate() error: %v", err)
		}
		if changed {
			t.Error("Migrate() rewrote a current document")
		}
		if string(out) != doc {
			t.Errorf("Migrate() altered bytes of current document")
		}
	})

	t.Run("missing version treated as 1.0.0", func(t *testing.T) {
		out, changed, err := Migrate([]byte("id: a\nname: A\nnotes: old\n"))
		if err != nil {
			t.Fatalf("Migrate() error: %v", err)
		}
		if !changed {
			t.Fatal("Migrate() did not rewrite a versionless document")
		}
		var raw map[string]any
		if err := yaml.Unmarshal(out, &raw); err != nil {
			t.Fatal(err)
		}
		if raw["schema_version"] != SchemaVersion {
			t.Errorf("schema_version = %v, want %v", raw["schema_version"], SchemaVersion)
		}
		if raw["description"] != "old" {
			t.Errorf("description = %v, want migrated notes value", raw["description"])
		}
		if _, ok := raw["notes"]; ok {
			t.Error("notes field survived migration")
		}
		if _, ok := raw["findings"]; !ok {
			t.Error("findings list not added by 1.1.0 migration")
		}
	})

	t.Run("1.1.0 only renames notes", func(t *testing.T) {
		out, changed, err := Migrate([]byte("schema_version: 1.1.0\nid: a\nname: A\nnotes: n\n"))
		if err != nil {
			t.Fatalf("Migrate() error: %v", err)
		}
		if !changed {
			t.Fatal("Migrate() did not rewrite a 1.1.0 document")
		}
		var raw map[string]any
		if err := yaml.Unmarshal(out, &raw); err != nil {
			t.Fatal(err)
		}
		if raw["description"] != "n" {
			t.Errorf("description = %v, want n", raw["description"])
		}
		if _, ok := raw["findings"]; ok {
			t.Error("findings added for a 1.1.0 document that never had them")
		}
	})

	t.Run("newer major rejected", func(t *testing.T) {
		_, _, err := Migrate([]byte("schema_version: 3.0.0\nid: a\nname: A\n"))
		if err == nil || !strings.Contains(err.Error(), "newer") {
			t.Errorf("Migrate() error = %v, want newer-schema rejection", err)
		}
	})

	t.Run("garbage version rejected", func(t *testing.T) {
		if _, _, err := Migrate([]byte("schema_version: banana\nid: a\n")); err == nil {
			t.Error("Migrate() accepted a non-semver version")
		}
	})
}
