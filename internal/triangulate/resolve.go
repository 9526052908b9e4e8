package triangulate

import (
	"github.com/lemina/startup-cli/internal/model"
	"github.com/lemina/startup-cli/internal/normalize"
)

// matchThreshold is the name-similarity cutoff for merging two entities.
// A match requires strictly greater similarity. Load-bearing: changing it
// silently changes which companies merge and their verification tiers.
const matchThreshold = 0.90

// arena holds accumulated canonical entities addressed by a stable key,
// preserving insertion order. First-match resolution scans keys in that
// order, so an unordered map would make runs non-reproducible.
type arena struct {
	keys  []string
	byKey map[string]*model.Company
}

func newArena() *arena {
	return &arena{byKey: make(map[string]*model.Company)}
}

func (a *arena) add(key string, c *model.Company) {
	if _, exists := a.byKey[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.byKey[key] = c
}

func (a *arena) companies() []*model.Company {
	out := make([]*model.Company, 0, len(a.keys))
	for _, k := range a.keys {
		out = append(out, a.byKey[k])
	}
	return out
}

// resolve decides whether the candidate refers to an entity already in the
// arena. Strict priority order, first hit wins:
//
//  1. Exact normalized-website match. URL identity is the strongest signal
//     and bypasses name comparison entirely.
//  2. First entity (in insertion order) whose normalized name similarity
//     strictly exceeds matchThreshold. First-match, not best-match.
//
// Resolution never fails for a valid record: a malformed website degrades
// to an empty key and falls through to name matching.
func (a *arena) resolve(rec model.RawRecord) (string, bool) {
	if rec.Website != "" {
		if site := normalize.URL(rec.Website); site != "" {
			for _, key := range a.keys {
				existing := a.byKey[key]
				if existing.Website == "" {
					continue
				}
				if normalize.URL(existing.Website) == site {
					return key, true
				}
			}
		}
	}

	name := normalize.Name(rec.Name)
	for _, key := range a.keys {
		existingName := normalize.Name(a.byKey[key].Name)
		if normalize.Similarity(name, existingName) > matchThreshold {
			return key, true
		}
	}

	return "", false
}

// entityKey generates the arena key for a brand-new entity: the normalized
// website when present, else the normalized name.
func entityKey(rec model.RawRecord) string {
	if rec.Website != "" {
		if key := normalize.URL(rec.Website); key != "" {
			return key
		}
	}
	return normalize.Name(rec.Name)
}
