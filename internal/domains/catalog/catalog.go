// Package catalog maps human readable "Country/City" labels to IANA timezone identifiers.
package catalog

import (
	"clockwise/shared/failure"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownLabel = failure.NotFound("Unknown timezone label")

	errEmptyLabel = errors.New("catalog entry has an empty label")
)

// Entry is one selectable clock.
type Entry struct {
	Label string `json:"label"`
	Zone  string `json:"zone"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog interface {
	Lookup(label string) (string, error)
	Contains(label string) bool
	Labels() []string
	Entries() []Entry
	Available(selected []string) []string
	Search(query string, limit int, exclude ...string) []Entry
}

type catalogImpl struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries, keeping their order. Labels must be unique and non-empty.
func New(entries []Entry) (Catalog, error) {
	c := &catalogImpl{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, entry := range entries {
		if strings.TrimSpace(entry.Label) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, errEmptyLabel)
		}

		if entry.Zone == "" {
			return nil, fmt.Errorf("entry %q has an empty timezone identifier", entry.Label)
		}

		if _, exists := c.index[entry.Label]; exists {
			return nil, fmt.Errorf("duplicate catalog label %q", entry.Label)
		}

		c.index[entry.Label] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	return c, nil
}

// NewDefault returns the built-in 44 entry catalog.
func NewDefault() Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *catalogImpl) Lookup(label string) (string, error) {
	i, ok := c.index[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}

	return c.entries[i].Zone, nil
}

func (c *catalogImpl) Contains(label string) bool {
	_, ok := c.index[label]

	return ok
}

func (c *catalogImpl) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, entry := range c.entries {
		labels[i] = entry.Label
	}

	return labels
}

func (c *catalogImpl) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Available lists the labels not in selected, in catalog order.
func (c *catalogImpl) Available(selected []string) []string {
	labels := make([]string, 0, len(c.entries))

	for _, entry := range c.entries {
		if slices.Contains(selected, entry.Label) {
			continue
		}

		labels = append(labels, entry.Label)
	}

	return labels
}
