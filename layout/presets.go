package layout

import (
	"fmt"
	"sort"
)

// Presets name the fixed headers of the osu! file formats. Each one stops where the file
// switches to repeated records or opaque data (e.g. the LZMA replay frames after replay_length).

// ReplayPreset is the header of a .osr replay.
func ReplayPreset() Layout {
	return Layout{
		Name: "replay",
		Fields: []Field{
			{"mode", KindByte},
			{"version", KindInt},
			{"beatmap_md5", KindString},
			{"player", KindString},
			{"replay_md5", KindString},
			{"count_300", KindShort},
			{"count_100", KindShort},
			{"count_50", KindShort},
			{"count_geki", KindShort},
			{"count_katu", KindShort},
			{"count_miss", KindShort},
			{"score", KindInt},
			{"max_combo", KindShort},
			{"perfect", KindBoolean},
			{"mods", KindInt},
			{"life_bar", KindString},
			{"timestamp", KindLong}, // .NET ticks
			{"replay_length", KindInt},
		},
	}
}

// OsuDBPreset is the header of osu!.db.
func OsuDBPreset() Layout {
	return Layout{
		Name: "osudb",
		Fields: []Field{
			{"version", KindInt},
			{"folder_count", KindInt},
			{"account_unlocked", KindBoolean},
			{"unlock_date", KindLong},
			{"player", KindString},
			{"beatmap_count", KindInt},
		},
	}
}

// ScoresDBPreset is the header of scores.db.
func ScoresDBPreset() Layout {
	return Layout{
		Name: "scoresdb",
		Fields: []Field{
			{"version", KindInt},
			{"beatmap_count", KindInt},
		},
	}
}

// CollectionDBPreset is the header of collection.db.
func CollectionDBPreset() Layout {
	return Layout{
		Name: "collectiondb",
		Fields: []Field{
			{"version", KindInt},
			{"collection_count", KindInt},
		},
	}
}

var presets = map[string]func() Layout{
	"replay":       ReplayPreset,
	"osudb":        OsuDBPreset,
	"scoresdb":     ScoresDBPreset,
	"collectiondb": CollectionDBPreset,
}

// Preset looks up a preset by name.
func Preset(name string) (Layout, error) {
	fn, ok := presets[name]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownPreset, name, PresetNames())
	}
	return fn(), nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns every preset, sorted by name.
func Presets() []Layout {
	names := PresetNames()
	out := make([]Layout, len(names))
	for i, name := range names {
		out[i] = presets[name]()
	}
	return out
}
