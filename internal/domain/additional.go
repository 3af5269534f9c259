package domain

import (
	"sort"

	"github.com/google/uuid"
)

// ContentKind names the sub-template an AdditionalContent entry is
// rendered with.
type ContentKind string

const (
	ContentTitle ContentKind = "title"
	ContentText  ContentKind = "text"
)

// AdditionalContent is a repeatable freeform sub-block spliced into a
// module at its insertion marker. Order is explicit and 1-based; Data
// supplies the named placeholders of the sub-template.
type AdditionalContent struct {
	ID           string            `json:"id"`
	Kind         ContentKind       `json:"kind"`
	TemplateName string            `json:"templateName"`
	Data         map[string]string `json:"data"`
	Order        int               `json:"order"`
}

// NewAdditionalContent builds an entry with a fresh id.
func NewAdditionalContent(kind ContentKind, data map[string]string) AdditionalContent {
	if data == nil {
		data = map[string]string{}
	}
	return AdditionalContent{
		ID:           uuid.New().String(),
		Kind:         kind,
		TemplateName: string(kind),
		Data:         data,
	}
}

// SortAdditionalContent orders entries by ascending Order without
// mutating the input.
func SortAdditionalContent(entries []AdditionalContent) []AdditionalContent {
	out := make([]AdditionalContent, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// renumber rewrites Order to the dense 1-based sequence.
func renumber(entries []AdditionalContent) []AdditionalContent {
	entries = SortAdditionalContent(entries)
	for i := range entries {
		entries[i].Order = i + 1
	}
	return entries
}

// AppendAdditionalContent adds the entry at the end of the list and
// returns the renumbered result.
func AppendAdditionalContent(entries []AdditionalContent, entry AdditionalContent) []AdditionalContent {
	entry.Order = len(entries) + 1
	return renumber(append(entries, entry))
}

// RemoveAdditionalContent deletes the entry with the given id and
// renumbers the survivors.
func RemoveAdditionalContent(entries []AdditionalContent, id string) []AdditionalContent {
	out := make([]AdditionalContent, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return renumber(out)
}

// MoveAdditionalContent moves the entry with the given id to the
// 1-based target position, clamped to the list bounds, and renumbers.
func MoveAdditionalContent(entries []AdditionalContent, id string, position int) []AdditionalContent {
	entries = renumber(entries)
	idx := -1
	for i, e := range entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entries
	}
	if position < 1 {
		position = 1
	}
	if position > len(entries) {
		position = len(entries)
	}
	moved := entries[idx]
	rest := append(entries[:idx:idx], entries[idx+1:]...)
	out := make([]AdditionalContent, 0, len(entries))
	out = append(out, rest[:position-1]...)
	out = append(out, moved)
	out = append(out, rest[position-1:]...)
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}
