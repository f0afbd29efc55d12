package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Prefix for IDs synthesized from the exercise name when a row carries
// none. Mapping the same row twice must yield the same ID.
const generatedIDPrefix = "ex-"

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// MapRecord converts one loosely-typed row into the canonical Exercise
// shape. It returns false when the row has no usable name; every other
// malformed field degrades to its documented default rather than
// rejecting the record.
//
// Field resolution prefers the primary naming convention
// (primary_muscle, video_url, image_url) and falls back to the short
// names (muscle, video, image).
func MapRecord(raw RawRow) (Exercise, bool) {
	name := strings.TrimSpace(stringField(raw, "name"))
	if name == "" {
		return Exercise{}, false
	}

	ex := Exercise{
		Name:       name,
		Muscle:     firstString(raw, "General", "primary_muscle", "muscle"),
		Image:      firstString(raw, "", "image_url", "image"),
		Video:      NormalizeVideoURL(firstString(raw, "", "video_url", "video")),
		Overview:   firstString(raw, "", "overview", "description"),
		Steps:      stringList(fieldOf(raw, "steps", "instructions")),
		Benefits:   stringList(raw["benefits"]),
		BPM:        intField(raw, "bpm"),
		Difficulty: ParseDifficulty(stringField(raw, "difficulty")),
		Calories:   intField(raw, "calories"),
	}

	ex.ID = stringField(raw, "id")
	if ex.ID == "" {
		ex.ID = GenerateID(name)
	}

	// Equipment may arrive as a scalar or as a list; the display string
	// is the joined form and EquipmentList retains the full set.
	switch v := raw["equipment"].(type) {
	case nil:
		ex.Equipment = "None"
	case string:
		ex.Equipment = defaultIfEmpty(strings.TrimSpace(v), "None")
		ex.EquipmentList = []string{ex.Equipment}
	default:
		list := stringList(v)
		if len(list) == 0 {
			ex.Equipment = "None"
		} else {
			ex.Equipment = strings.Join(list, ", ")
			ex.EquipmentList = list
		}
	}
	if list := stringList(raw["equipment_list"]); len(list) > 0 {
		ex.EquipmentList = list
	}

	if ex.Steps == nil {
		ex.Steps = []string{}
	}
	if ex.Benefits == nil {
		ex.Benefits = []string{}
	}

	return ex, true
}

// MapRecords maps a batch of rows, dropping the unusable ones.
func MapRecords(rows []RawRow) []Exercise {
	out := make([]Exercise, 0, len(rows))
	for _, row := range rows {
		if ex, ok := MapRecord(row); ok {
			out = append(out, ex)
		}
	}
	return out
}

// GenerateID derives a stable identifier from an exercise name.
func GenerateID(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return generatedIDPrefix + strings.Trim(slug, "-")
}

func fieldOf(raw RawRow, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(raw RawRow, fallback string, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(stringField(raw, k)); s != "" {
			return s
		}
	}
	return fallback
}

func stringField(raw RawRow, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64, int, int64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

func intField(raw RawRow, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

// stringList accepts the shapes steps/benefits arrive in: a real array,
// a JSON-encoded array string, or free text split into non-empty lines.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return compact(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			var arr []string
			if err := json.Unmarshal([]byte(s), &arr); err == nil {
				return compact(arr)
			}
		}
		return compact(strings.Split(s, "\n"))
	default:
		return nil
	}
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func defaultIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
