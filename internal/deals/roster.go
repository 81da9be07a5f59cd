package deals

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/platewise/platewise/internal/model"
)

//go:embed roster.yaml
var rosterYAML []byte

var (
	rosterOnce sync.Once
	rosterData []model.Restaurant
	rosterErr  error
)

// Roster returns the static restaurant seed roster in declaration order.
// Callers receive a fresh slice; the underlying restaurants are read-only
// by convention and never mutated by the pipeline.
func Roster() ([]model.Restaurant, error) {
	rosterOnce.Do(func() {
		rosterErr = yaml.Unmarshal(rosterYAML, &rosterData)
	})
	if rosterErr != nil {
		return nil, rosterErr
	}
	out := make([]model.Restaurant, len(rosterData))
	copy(out, rosterData)
	return out, nil
}

// findByName looks a restaurant up by display name.
func findByName(restaurants []model.Restaurant, name string) (model.Restaurant, bool) {
	for _, r := range restaurants {
		if r.Name == name {
			return r, true
		}
	}
	return model.Restaurant{}, false
}
