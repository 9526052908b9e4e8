package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lemina/startup-cli/internal/model"
)

func seedArena(recs ...model.RawRecord) *arena {
	a := newArena()
	for _, rec := range recs {
		a.add(entityKey(rec), model.NewCompany(rec))
	}
	return a
}

func TestResolve_ExactURLOverridesWeakName(t *testing.T) {
	// Completely different names, identical normalized website.
	a := seedArena(model.RawRecord{
		Name: "Kuda Microfinance Bank", Website: "https://kuda.com", Source: "a",
	})

	key, ok := a.resolve(model.RawRecord{
		Name: "Nubank of Africa", Website: "http://www.kuda.com/", Source: "b",
	})

	assert.True(t, ok)
	assert.Equal(t, "kuda.com", key)
}

func TestResolve_NameSimilarityAboveThreshold(t *testing.T) {
	a := seedArena(model.RawRecord{Name: "Flutterwave", Source: "a"})

	key, ok := a.resolve(model.RawRecord{Name: "Flutterwave Inc", Source: "b"})

	assert.True(t, ok)
	assert.Equal(t, "flutterwave", key)
}

func TestResolve_BelowThresholdIsNewEntity(t *testing.T) {
	// "kuda" vs "kuda bank" ratio is 8/13, well under 0.90.
	a := seedArena(model.RawRecord{Name: "KUDA Bank Ltd", Source: "a"})

	_, ok := a.resolve(model.RawRecord{Name: "Kuda", Source: "b"})

	assert.False(t, ok)
}

func TestResolve_FirstMatchWinsInInsertionOrder(t *testing.T) {
	// Both entities exceed the threshold against the candidate; the one
	// inserted first must win. Documented first-match policy, not best-match.
	a := seedArena(
		model.RawRecord{Name: "Paystack", Website: "https://one.example", Source: "a"},
		model.RawRecord{Name: "Paystack", Website: "https://two.example", Source: "b"},
	)

	key, ok := a.resolve(model.RawRecord{Name: "Paystack Inc", Source: "c"})

	assert.True(t, ok)
	assert.Equal(t, "one.example", key)
}

func TestResolve_MalformedWebsiteFallsThroughToName(t *testing.T) {
	a := seedArena(model.RawRecord{Name: "Andela", Source: "a"})

	key, ok := a.resolve(model.RawRecord{
		Name: "Andela", Website: "http://[::1%", Source: "b",
	})

	assert.True(t, ok)
	assert.Equal(t, "andela", key)
}

func TestEntityKey_PrefersWebsite(t *testing.T) {
	assert.Equal(t, "kuda.com", entityKey(model.RawRecord{
		Name: "Kuda", Website: "https://www.kuda.com/",
	}))
	assert.Equal(t, "kuda", entityKey(model.RawRecord{Name: "Kuda Ltd"}))
	assert.Equal(t, "kuda", entityKey(model.RawRecord{
		Name: "Kuda Ltd", Website: "http://[::1%",
	}))
}
