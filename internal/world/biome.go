package world

import "fmt"

// Biome is a biome id as used by the 1.8 chunk format.
type Biome uint8

const (
	Ocean            Biome = 0
	Plains           Biome = 1
	Desert           Biome = 2
	ExtremeHills     Biome = 3
	Forest           Biome = 4
	Taiga            Biome = 5
	Swampland        Biome = 6
	River            Biome = 7
	Hell             Biome = 8
	Sky              Biome = 9
	FrozenOcean      Biome = 10
	FrozenRiver      Biome = 11
	IcePlains        Biome = 12
	IceMountains     Biome = 13
	MushroomIsland   Biome = 14
	Beach            Biome = 16
	DesertHills      Biome = 17
	ForestHills      Biome = 18
	TaigaHills       Biome = 19
	Jungle           Biome = 21
	JungleHills      Biome = 22
	DeepOcean        Biome = 24
	StoneBeach       Biome = 25
	ColdBeach        Biome = 26
	BirchForest      Biome = 27
	RoofedForest     Biome = 29
	ColdTaiga        Biome = 30
	MegaTaiga        Biome = 32
	ExtremeHillsPlus Biome = 34
	Savanna          Biome = 35
	Mesa             Biome = 37
)

type biomeInfo struct {
	name  string
	color string
}

var biomes = map[Biome]biomeInfo{
	Ocean:            {"ocean", "#000070"},
	Plains:           {"plains", "#8db360"},
	Desert:           {"desert", "#fa9418"},
	ExtremeHills:     {"extreme_hills", "#606060"},
	Forest:           {"forest", "#056621"},
	Taiga:            {"taiga", "#0b6659"},
	Swampland:        {"swampland", "#07f9b2"},
	River:            {"river", "#0000ff"},
	Hell:             {"hell", "#ff0000"},
	Sky:              {"sky", "#8080ff"},
	FrozenOcean:      {"frozen_ocean", "#9090a0"},
	FrozenRiver:      {"frozen_river", "#a0a0ff"},
	IcePlains:        {"ice_plains", "#ffffff"},
	IceMountains:     {"ice_mountains", "#a0a0a0"},
	MushroomIsland:   {"mushroom_island", "#ff00ff"},
	Beach:            {"beach", "#fade55"},
	DesertHills:      {"desert_hills", "#d25f12"},
	ForestHills:      {"forest_hills", "#22551c"},
	TaigaHills:       {"taiga_hills", "#163933"},
	Jungle:           {"jungle", "#537b09"},
	JungleHills:      {"jungle_hills", "#2c4205"},
	DeepOcean:        {"deep_ocean", "#000030"},
	StoneBeach:       {"stone_beach", "#a2a284"},
	ColdBeach:        {"cold_beach", "#faf0c0"},
	BirchForest:      {"birch_forest", "#307444"},
	RoofedForest:     {"roofed_forest", "#40511a"},
	ColdTaiga:        {"cold_taiga", "#31554a"},
	MegaTaiga:        {"mega_taiga", "#596651"},
	ExtremeHillsPlus: {"extreme_hills_plus", "#507050"},
	Savanna:          {"savanna", "#bdb25f"},
	Mesa:             {"mesa", "#d94515"},
}

func (b Biome) String() string {
	if info, ok := biomes[b]; ok {
		return info.name
	}
	return fmt.Sprintf("biome(%d)", uint8(b))
}

// Color is the map colour used by previews.
func (b Biome) Color() string {
	if info, ok := biomes[b]; ok {
		return info.color
	}
	return "#808080"
}

// ParseBiome accepts a biome name as returned by String.
func ParseBiome(name string) (Biome, error) {
	for id, info := range biomes {
		if info.name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown biome %q", name)
}

// ClassifyBiome picks a biome from temperature and rainfall samples in
// [-1, 1] on a Whittaker-style grid so neighbouring climates stay related.
func ClassifyBiome(temperature, rainfall float64) Biome {
	temp := clamp((temperature+1)/2, 0, 1)
	rain := clamp((rainfall+1)/2, 0, 1)

	switch {
	case temp < 0.2:
		if rain > 0.6 {
			return ColdTaiga
		}
		return IcePlains
	case temp < 0.35:
		if rain > 0.5 {
			return Taiga
		}
		return ExtremeHills
	case temp < 0.65:
		switch {
		case rain > 0.8:
			return Swampland
		case rain > 0.6:
			return RoofedForest
		case rain > 0.4:
			return Forest
		case rain > 0.25:
			return Plains
		default:
			return ExtremeHills
		}
	default:
		switch {
		case rain > 0.75:
			return Jungle
		case rain > 0.45:
			return Savanna
		case rain > 0.3:
			return Plains
		default:
			return Desert
		}
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
