package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/frontline/internal/game/core"
)

// GenerateRandomPlacements picks up to n random place actions the session
// could afford right now. It is intended for demos and smoke tests.
func GenerateRandomPlacements(p *Play, rng *rand.Rand, n int) []PlaceAction {
	b := p.Board()
	ap := p.AP()
	var candidates []PlaceAction
	for y := 0; y <= min(b.Frontline(), b.VisibleRows()-1); y++ {
		for x := 0; x < b.Columns(); x++ {
			kind := core.UnitKinds[rng.Intn(len(core.UnitKinds))]
			action := PlaceAction{Unit: kind, At: core.Point{X: x, Y: y}}
			if action.Validate(b, ap) == nil {
				candidates = append(candidates, action)
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var chosen []PlaceAction
	for _, c := range candidates {
		if len(chosen) == n || ap < c.Cost() {
			continue
		}
		ap -= c.Cost()
		chosen = append(chosen, c)
		p.logger.Debug().
			Str("unit", c.Unit.String()).
			Int("x", c.At.X).Int("y", c.At.Y).
			Msg("Generated random placement")
	}
	return chosen
}
