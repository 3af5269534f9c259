package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrModuleNotFound is returned by operations addressing an id that is
// not part of the newsletter.
var ErrModuleNotFound = errors.New("module not found")

func notFound(id string) error {
	return fmt.Errorf("id %s: %w", id, ErrModuleNotFound)
}

// Newsletter is one editing session: the ordered list of placed modules
// plus the current selection. It is a plain value, callers own any
// locking.
type Newsletter struct {
	ID         string            `json:"id"`
	Title      string            `json:"title,omitempty"`
	Modules    []*ModuleInstance `json:"modules"`
	SelectedID string            `json:"selectedId,omitempty"`
}

// NewNewsletter creates an empty session.
func NewNewsletter() *Newsletter {
	return &Newsletter{
		ID:      uuid.New().String(),
		Modules: []*ModuleInstance{},
	}
}

// normalize sorts modules by Order and rewrites Order to the dense
// sequence 0..N-1 so every mutation leaves a gap-free ordering.
func (n *Newsletter) normalize() {
	sort.SliceStable(n.Modules, func(i, j int) bool {
		return n.Modules[i].Order < n.Modules[j].Order
	})
	for i, m := range n.Modules {
		m.Order = i
	}
}

func (n *Newsletter) indexOf(id string) int {
	for i, m := range n.Modules {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Module returns the instance with the given id.
func (n *Newsletter) Module(id string) (*ModuleInstance, error) {
	i := n.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	return n.Modules[i], nil
}

// Add appends the module at the end of the document and selects it.
func (n *Newsletter) Add(m *ModuleInstance) {
	m.Order = len(n.Modules)
	n.Modules = append(n.Modules, m)
	n.normalize()
	n.SelectedID = m.ID
}

// InsertAt places the module at the given position, clamped to the
// document bounds, and selects it.
func (n *Newsletter) InsertAt(m *ModuleInstance, position int) {
	if position < 0 {
		position = 0
	}
	if position > len(n.Modules) {
		position = len(n.Modules)
	}
	for _, existing := range n.Modules {
		if existing.Order >= position {
			existing.Order++
		}
	}
	m.Order = position
	n.Modules = append(n.Modules, m)
	n.normalize()
	n.SelectedID = m.ID
}

// Remove deletes the module with the given id. The selection is cleared
// when it pointed at the removed module.
func (n *Newsletter) Remove(id string) error {
	i := n.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	n.Modules = append(n.Modules[:i], n.Modules[i+1:]...)
	if n.SelectedID == id {
		n.SelectedID = ""
	}
	n.normalize()
	return nil
}

// Move places the module with the given id at the target position,
// clamped to the document bounds.
func (n *Newsletter) Move(id string, position int) error {
	i := n.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if position < 0 {
		position = 0
	}
	if position >= len(n.Modules) {
		position = len(n.Modules) - 1
	}
	m := n.Modules[i]
	n.Modules = append(n.Modules[:i], n.Modules[i+1:]...)
	rest := make([]*ModuleInstance, 0, len(n.Modules)+1)
	rest = append(rest, n.Modules[:position]...)
	rest = append(rest, m)
	rest = append(rest, n.Modules[position:]...)
	n.Modules = rest
	for idx, mod := range n.Modules {
		mod.Order = idx
	}
	return nil
}

// MoveUp swaps the module with its predecessor. Already at the top is a
// no-op.
func (n *Newsletter) MoveUp(id string) error {
	i := n.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if i == 0 {
		return nil
	}
	return n.Move(id, i-1)
}

// MoveDown swaps the module with its successor. Already at the bottom
// is a no-op.
func (n *Newsletter) MoveDown(id string) error {
	i := n.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	if i == len(n.Modules)-1 {
		return nil
	}
	return n.Move(id, i+1)
}

// Duplicate deep-copies the module and inserts the copy directly after
// the original, selecting the copy.
func (n *Newsletter) Duplicate(id string) (*ModuleInstance, error) {
	i := n.indexOf(id)
	if i < 0 {
		return nil, notFound(id)
	}
	copied := n.Modules[i].Clone()
	n.InsertAt(copied, i+1)
	return copied, nil
}

// Select marks the module as the editing target. An empty id clears the
// selection.
func (n *Newsletter) Select(id string) error {
	if id == "" {
		n.SelectedID = ""
		return nil
	}
	if n.indexOf(id) < 0 {
		return notFound(id)
	}
	n.SelectedID = id
	return nil
}

// Selected returns the currently selected module, nil when nothing is
// selected.
func (n *Newsletter) Selected() *ModuleInstance {
	if n.SelectedID == "" {
		return nil
	}
	if i := n.indexOf(n.SelectedID); i >= 0 {
		return n.Modules[i]
	}
	return nil
}

// ClearAll removes every module and the selection.
func (n *Newsletter) ClearAll() {
	n.Modules = []*ModuleInstance{}
	n.SelectedID = ""
}

// Ordered returns the modules sorted by Order without mutating the
// session.
func (n *Newsletter) Ordered() []*ModuleInstance {
	out := make([]*ModuleInstance, len(n.Modules))
	copy(out, n.Modules)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
