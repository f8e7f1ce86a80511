// Package config manages user-level settings stored at ~/.uxkit/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the author name stamped into generated artifacts and the default editor.
package config
