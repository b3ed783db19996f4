package core

import "fmt"

// Terrain is the ground type of a tile.
type Terrain int

const (
	TerrainGround Terrain = iota
	// TerrainMountain blocks ground units and stops fire pattern scans.
	TerrainMountain
)

// Terrains lists every terrain type in editor cycling order.
var Terrains = []Terrain{TerrainGround, TerrainMountain}

func (t Terrain) String() string {
	switch t {
	case TerrainGround:
		return "ground"
	case TerrainMountain:
		return "mountain"
	default:
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
}

// Next returns the terrain that follows t in Terrains, wrapping around.
func (t Terrain) Next() Terrain {
	for i, candidate := range Terrains {
		if candidate == t {
			return Terrains[(i+1)%len(Terrains)]
		}
	}
	return Terrains[0]
}

// ParseTerrain converts a terrain name back to a Terrain.
func ParseTerrain(s string) (Terrain, error) {
	for _, t := range Terrains {
		if t.String() == s {
			return t, nil
		}
	}
	return TerrainGround, fmt.Errorf("unknown terrain %q", s)
}
