// Package template implements the markdown artifact templating language.
//
// Templates are plain text with directives delimited by {{ and }}:
//
//	{{path}}                          variable substitution (dot-paths)
//	{{#if path}}...{{else}}...{{/if}} conditional block
//	{{#each path}}...{{/each}}        iteration block
//	{{#unless path}}...{{/unless}}    inverted conditional block
//	{{>name}}                         partial reference
//
// Inside an #each body the current item is addressable as {{this}}, its
// direct fields (when the item is a map) are visible as top-level names,
// and the loop metadata variables {{@index}} and {{@last}} are in scope.
//
// Rendering is forgiving: a path that does not resolve produces the empty
// string, and an #each over a non-list value produces nothing. The only
// failure mode is ErrRender, returned for unbalanced braces, unterminated
// blocks, and any other malformed input.
package template
