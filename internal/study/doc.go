// Package study persists UX research studies as YAML documents under
// .uxkit/studies/<id>/study.yaml. Documents carry a schema_version and
// are migrated forward on load; writes go through an atomic rename so a
// crash never leaves a torn file. Saved documents are validated against
// an embedded JSON Schema.
package study
