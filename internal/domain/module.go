// Package domain holds the core newsletter model: module instances,
// their editable properties, table content and the session document
// they are composed into.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ModuleInstance is one content block placed in a newsletter. Properties
// carries the editable field values keyed by placeholder name, Styles
// carries camelCase CSS overrides applied to the module's outermost
// container at render time.
type ModuleInstance struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Order      int               `json:"order"`
	Properties map[string]any    `json:"properties"`
	Styles     map[string]string `json:"styles,omitempty"`
}

// NewModuleInstance creates an instance of the given type with a fresh
// id and empty property map.
func NewModuleInstance(moduleType string) *ModuleInstance {
	return &ModuleInstance{
		ID:         uuid.New().String(),
		Type:       moduleType,
		Properties: map[string]any{},
	}
}

// Property returns the raw value for key, nil when absent.
func (m *ModuleInstance) Property(key string) any {
	if m.Properties == nil {
		return nil
	}
	return m.Properties[key]
}

// StringProperty returns the value for key coerced to a string.
// Non-string values yield "".
func (m *ModuleInstance) StringProperty(key string) string {
	if v, ok := m.Property(key).(string); ok {
		return v
	}
	return ""
}

// BoolProperty returns the value for key as a bool, false when absent
// or not a bool.
func (m *ModuleInstance) BoolProperty(key string) bool {
	v, ok := m.Property(key).(bool)
	return ok && v
}

// SetProperty stores value under key, allocating the map on first use.
func (m *ModuleInstance) SetProperty(key string, value any) {
	if m.Properties == nil {
		m.Properties = map[string]any{}
	}
	m.Properties[key] = value
}

// Clone returns a deep copy of the instance with a new id. Nested
// slices and maps in Properties are copied as far as the table and
// additional-content types go.
func (m *ModuleInstance) Clone() *ModuleInstance {
	copied := &ModuleInstance{
		ID:         uuid.New().String(),
		Type:       m.Type,
		Order:      m.Order,
		Properties: cloneProperties(m.Properties),
	}
	if m.Styles != nil {
		copied.Styles = make(map[string]string, len(m.Styles))
		for k, v := range m.Styles {
			copied.Styles[k] = v
		}
	}
	return copied
}

func cloneProperties(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return cloneProperties(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []TableRow:
		out := make([]TableRow, len(typed))
		for i, row := range typed {
			out[i] = row.Clone()
		}
		return out
	case []AdditionalContent:
		out := make([]AdditionalContent, len(typed))
		copy(out, typed)
		return out
	default:
		return v
	}
}

// PropKind classifies an editable property for default seeding and
// editor rendering.
type PropKind string

const (
	PropText     PropKind = "text"
	PropRichText PropKind = "richtext"
	PropURL      PropKind = "url"
	PropImage    PropKind = "image"
	PropColor    PropKind = "color"
	PropBool     PropKind = "bool"
	PropNumber   PropKind = "number"
	PropTable    PropKind = "table"
	PropList     PropKind = "list"
)

// EditableProp describes one editable field of a module type.
type EditableProp struct {
	Key         string   `json:"key"`
	Label       string   `json:"label,omitempty"`
	Kind        PropKind `json:"kind"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// DefaultValue returns the value a freshly added module gets for this
// property: false for booleans, black for colors, zero for numbers and
// the placeholder text otherwise.
func (p EditableProp) DefaultValue() any {
	switch p.Kind {
	case PropBool:
		return false
	case PropColor:
		return "#000000"
	case PropNumber:
		return 0
	case PropTable:
		return []TableRow{}
	case PropList:
		return []AdditionalContent{}
	default:
		if strings.TrimSpace(p.Placeholder) != "" {
			return p.Placeholder
		}
		return ""
	}
}

// ModuleMetadata is the catalog entry for one module type.
type ModuleMetadata struct {
	TypeID      string         `json:"typeId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Props       []EditableProp `json:"props,omitempty"`
}

// DefaultProperties builds the property map a new instance of this type
// starts with.
func (m ModuleMetadata) DefaultProperties() map[string]any {
	props := make(map[string]any, len(m.Props))
	for _, p := range m.Props {
		props[p.Key] = p.DefaultValue()
	}
	return props
}
