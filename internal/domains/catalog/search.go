package catalog

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type match struct {
	index    int
	distance int
}

// Search ranks entries whose label or zone fuzzily matches query. Closer matches come
// first, ties are ordered alphabetically by label. An empty query returns entries in
// catalog order. A limit of zero or less means no limit.
func (c *catalogImpl) Search(query string, limit int, exclude ...string) []Entry {
	query = strings.TrimSpace(query)

	if query == "" {
		out := make([]Entry, 0, len(c.entries))

		for _, entry := range c.entries {
			if slices.Contains(exclude, entry.Label) {
				continue
			}

			out = append(out, entry)
			if limit > 0 && len(out) == limit {
				break
			}
		}

		return out
	}

	labels := make([]string, len(c.entries))
	zones := make([]string, len(c.entries))

	for i, entry := range c.entries {
		labels[i] = entry.Label
		zones[i] = strings.ReplaceAll(entry.Zone, "_", " ")
	}

	best := make(map[int]int)

	collect := func(ranks fuzzy.Ranks) {
		for _, rank := range ranks {
			if d, ok := best[rank.OriginalIndex]; !ok || rank.Distance < d {
				best[rank.OriginalIndex] = rank.Distance
			}
		}
	}

	collect(fuzzy.RankFindNormalizedFold(query, labels))
	collect(fuzzy.RankFindNormalizedFold(query, zones))

	matches := make([]match, 0, len(best))

	for i, distance := range best {
		if slices.Contains(exclude, c.entries[i].Label) {
			continue
		}

		matches = append(matches, match{index: i, distance: distance})
	}

	// collators are not safe for concurrent use, so each search gets its own
	col := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)

	slices.SortFunc(matches, func(a, b match) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}

		if cmp := col.CompareString(c.entries[a.index].Label, c.entries[b.index].Label); cmp != 0 {
			return cmp
		}

		return a.index - b.index
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = c.entries[m.index]
	}

	return out
}
