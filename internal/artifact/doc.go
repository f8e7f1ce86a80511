// Package artifact generates markdown research artifacts from templates.
// It owns the non-engine half of rendering: locating template text
// (workspace overrides first, embedded defaults second), assembling the
// render context from a study, invoking the template engine, and writing
// the result into the study directory.
package artifact
