// Package research implements the research-workflow steps: question
// generation, source collection, interview formatting, findings, and the
// study summary. Each step mutates the study document through the store
// and regenerates the matching markdown artifact.
package research
