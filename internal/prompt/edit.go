package prompt

import "math"

// Editing operations are pure: they never mutate their input, returning a
// fresh list instead. The caller owns the returned list exclusively.

// Insert adds a new default-weight enabled tag at index, shifting later
// entries. index is clamped to the list bounds.
func Insert(tags []Tag, index int, text string) []Tag {
	if index < 0 {
		index = 0
	}
	if index > len(tags) {
		index = len(tags)
	}

	out := make([]Tag, 0, len(tags)+1)
	out = append(out, tags[:index]...)
	out = append(out, New(text))
	return append(out, tags[index:]...)
}

// Remove deletes the tag with the given id. Unknown ids are a no-op.
func Remove(tags []Tag, id string) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.ID != id {
			out = append(out, tag)
		}
	}
	return out
}

// Move relocates the tag at from to position to. Out-of-range indices are a
// no-op.
func Move(tags []Tag, from, to int) []Tag {
	if from < 0 || from >= len(tags) || to < 0 || to >= len(tags) || from == to {
		return clone(tags)
	}

	out := make([]Tag, 0, len(tags))
	out = append(out, tags[:from]...)
	out = append(out, tags[from+1:]...)

	moved := tags[from]
	out = append(out[:to], append([]Tag{moved}, out[to:]...)...)
	return out
}

// ToggleEnabled flips the enabled flag of the tag with the given id.
func ToggleEnabled(tags []Tag, id string) []Tag {
	out := clone(tags)
	for i := range out {
		if out[i].ID == id {
			out[i].Enabled = !out[i].Enabled
		}
	}
	return out
}

// SetText replaces the text of the tag with the given id, keeping weight
// and identity.
func SetText(tags []Tag, id, text string) []Tag {
	out := clone(tags)
	for i := range out {
		if out[i].ID == id {
			out[i].Text = text
		}
	}
	return out
}

// IncreaseWeight steps the tag's weight up by WeightStep, clamped to
// WeightMax. Stepping at the bound is a no-op, never an error.
func IncreaseWeight(tags []Tag, id string) []Tag {
	return AdjustWeight(tags, id, WeightStep)
}

// DecreaseWeight steps the tag's weight down by WeightStep, clamped to
// WeightMin.
func DecreaseWeight(tags []Tag, id string) []Tag {
	return AdjustWeight(tags, id, -WeightStep)
}

// AdjustWeight applies delta to the tag's weight, rounded to two decimals
// and clamped to [WeightMin, WeightMax].
func AdjustWeight(tags []Tag, id string, delta float64) []Tag {
	out := clone(tags)
	for i := range out {
		if out[i].ID == id {
			out[i].Weight = ClampWeight(round2(out[i].Weight + delta))
		}
	}
	return out
}

// RemoveSelected drops every tag whose id is in the selection set.
func RemoveSelected(tags []Tag, selected map[string]bool) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, tag := range tags {
		if !selected[tag.ID] {
			out = append(out, tag)
		}
	}
	return out
}

// DisableSelected disables every tag whose id is in the selection set.
func DisableSelected(tags []Tag, selected map[string]bool) []Tag {
	out := clone(tags)
	for i := range out {
		if selected[out[i].ID] {
			out[i].Enabled = false
		}
	}
	return out
}

// ToggleSelectAll returns a full selection when the current one is partial,
// and an empty selection when every tag is already selected.
func ToggleSelectAll(tags []Tag, selected map[string]bool) map[string]bool {
	all := true
	for _, tag := range tags {
		if !selected[tag.ID] {
			all = false
			break
		}
	}

	out := make(map[string]bool, len(tags))
	if all {
		return out
	}
	for _, tag := range tags {
		out[tag.ID] = true
	}
	return out
}

func clone(tags []Tag) []Tag {
	out := make([]Tag, len(tags))
	copy(out, tags)
	return out
}

func round2(w float64) float64 {
	return math.Round(w*100) / 100
}
