// Package catalog defines the canonical exercise record and the pure
// pipeline that produces it: raw-row mapping, video URL normalization,
// name-keyed merging, and search/filter/pagination over the merged set.
package catalog

import "strings"

// Difficulty is the coarse skill rating attached to an exercise.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ParseDifficulty maps free-form input to a known difficulty, defaulting
// to Beginner for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return DifficultyIntermediate
	case "advanced":
		return DifficultyAdvanced
	default:
		return DifficultyBeginner
	}
}

// RawRow is an exercise record as delivered by a remote source or the
// cache: loosely typed, field names unchecked. The mapper turns it into
// an Exercise.
type RawRow = map[string]any

// Exercise is the canonical record shape, independent of source.
// Name is the identity used for merging; two records whose names match
// case-insensitively are the same exercise.
type Exercise struct {
	ID            string     `firestore:"id" json:"id"`
	Name          string     `firestore:"name" json:"name"`
	Muscle        string     `firestore:"muscle" json:"muscle"`
	Equipment     string     `firestore:"equipment" json:"equipment"`
	Image         string     `firestore:"image,omitempty" json:"image,omitempty"`
	Video         string     `firestore:"video,omitempty" json:"video,omitempty"`
	Overview      string     `firestore:"overview,omitempty" json:"overview,omitempty"`
	Steps         []string   `firestore:"steps,omitempty" json:"steps,omitempty"`
	Benefits      []string   `firestore:"benefits,omitempty" json:"benefits,omitempty"`
	BPM           int        `firestore:"bpm" json:"bpm"`
	Difficulty    Difficulty `firestore:"difficulty" json:"difficulty"`
	EquipmentList []string   `firestore:"equipment_list,omitempty" json:"equipmentList,omitempty"`
	Calories      int        `firestore:"calories" json:"calories"`
}

// Key returns the case-insensitive identity used for dedup.
func (e Exercise) Key() string {
	return strings.ToLower(strings.TrimSpace(e.Name))
}
