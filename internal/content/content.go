// Package content registers reusable message bodies in a document so dialogs
// can reference them with a "#id" message.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hay-kot/alertbox/internal/dom"
)

// ErrDuplicateID is returned when two files resolve to the same element id.
var ErrDuplicateID = errors.New("duplicate content id")

// Entry is one registered content element.
type Entry struct {
	ID   string
	Path string
}

// ID derives the element id for a file: its base name without extension.
func ID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load expands each doublestar pattern and appends one element per matched
// file to the document head, with the file contents as the element content.
// Patterns starting with "~/" are expanded against the user's home directory.
func Load(doc *dom.Document, patterns []string) ([]Entry, error) {
	var entries []Entry
	seen := map[string]string{}

	for _, pattern := range patterns {
		pattern = ExpandHome(pattern)

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, path := range matches {
			id := ID(path)
			if prev, ok := seen[id]; ok {
				if prev == path {
					continue
				}
				return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateID, id, prev, path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read content %s: %w", path, err)
			}

			el := doc.CreateElement("template")
			el.SetAttribute("id", id)
			el.SetAttribute("data-source", path)
			el.SetContent(strings.TrimRight(string(data), "\n"))
			doc.Head().AppendChild(el)

			seen[id] = path
			entries = append(entries, Entry{ID: id, Path: path})
		}
	}

	return entries, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(pattern string) string {
	rest, ok := strings.CutPrefix(pattern, "~/")
	if !ok {
		return pattern
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return pattern
	}
	return filepath.Join(home, rest)
}
