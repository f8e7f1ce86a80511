// Package workspace locates and initializes the per-project .uxkit/
// directory that holds studies, generated artifacts, and template
// overrides. Discovery walks up from the working directory, with an
// UXKIT_ROOT environment override for scripts and tests.
package workspace
