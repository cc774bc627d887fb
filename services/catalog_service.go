package services

import (
	"math"
	"strings"

	"nutriplan/models"
)

// DefaultNutrients is returned for foods the catalog has never seen.
// A deliberate fallback, not an error: dietary estimation stays lenient.
var DefaultNutrients = models.NutrientProfile{
	Calories: 100,
	ProteinG: 5,
	CarbsG:   15,
	FatG:     3,
	FiberG:   2,
}

// FoodCatalog is the static per-100g nutrient reference. Entries keep
// insertion order so fuzzy-match ties resolve to the first-inserted row.
type FoodCatalog struct {
	version string
	entries []models.FoodEntry
	index   map[string]int
}

// NewFoodCatalog builds a catalog from ordered entries. Duplicate names
// keep the first occurrence.
func NewFoodCatalog(version string, entries []models.FoodEntry) *FoodCatalog {
	c := &FoodCatalog{version: version, index: make(map[string]int, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

func (c *FoodCatalog) Version() string { return c.version }

// Entries returns the catalog rows in insertion order.
func (c *FoodCatalog) Entries() []models.FoodEntry { return c.entries }

// Lookup resolves a food name to its per-100g profile. Exact key match
// first; otherwise substring containment either way, scored by the number
// of shared whitespace-separated tokens, ties broken by insertion order.
// Unknown foods get DefaultNutrients under the queried name (found=false).
func (c *FoodCatalog) Lookup(name string) (models.FoodEntry, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if i, ok := c.index[query]; ok {
		return c.entries[i], true
	}

	// Any containment hit beats the default fallback, even when the key
	// and query share no whole token ("eggs" vs "egg").
	queryTokens := tokenSet(query)
	best := -1
	bestScore := -1
	for i, e := range c.entries {
		key := strings.ToLower(e.Name)
		if !strings.Contains(query, key) && !strings.Contains(key, query) {
			continue
		}
		score := sharedTokens(tokenSet(key), queryTokens)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 {
		return c.entries[best], true
	}

	return models.FoodEntry{Name: name, Nutrients: DefaultNutrients}, false
}

// Scale converts a per-100g profile to the given portion weight.
// Grams round to 1 decimal, calories to the nearest integer.
func Scale(profile models.NutrientProfile, grams float64) models.NutrientProfile {
	f := grams / 100.0
	return models.NutrientProfile{
		Calories: math.Round(profile.Calories * f),
		ProteinG: round1(profile.ProteinG * f),
		FatG:     round1(profile.FatG * f),
		CarbsG:   round1(profile.CarbsG * f),
		FiberG:   round1(profile.FiberG * f),
		SugarG:   round1(profile.SugarG * f),
		SodiumMg: round1(profile.SodiumMg * f),
	}
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}

func sharedTokens(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
