// Package source reads the Chinese text to annotate and its optional full
// translation. Text can come from a local file or from a web article, in
// which case readability extracts the main content.
package source
