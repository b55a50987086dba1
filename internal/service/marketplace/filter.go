package marketplace

import (
	"strings"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

// Widget is the filter control suited to an attribute's observed values.
type Widget string

const (
	WidgetTriState    Widget = "tristate"
	WidgetMultiSelect Widget = "multiselect"
	WidgetText        Widget = "text"
)

// maxMultiSelectValues is the largest domain still offered as a multi-select.
const maxMultiSelectValues = 9

// Domain is the set of distinct non-empty values observed for one attribute
// name across a candidate set, in first-seen order.
type Domain struct {
	Name   string
	Type   domain.AttributeType
	Values []string
	Widget Widget
}

// Candidates returns all entities when typeID is empty, otherwise those of
// that type. Input order is kept.
func Candidates(entities []domain.Entity, typeID string) []domain.Entity {
	if typeID == "" {
		return entities
	}
	out := make([]domain.Entity, 0, len(entities))
	for _, e := range entities {
		if e.TypeID == typeID {
			out = append(out, e)
		}
	}
	return out
}

// Domains collects, per attribute name, the distinct non-empty values seen
// on candidates. Names are ordered by first appearance. An attribute whose
// first occurrence is boolean always gets the tri-state widget.
func Domains(candidates []domain.Entity) []Domain {
	var out []Domain
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})

	for _, e := range candidates {
		for _, a := range e.Attributes {
			i, ok := index[a.Name]
			if !ok {
				i = len(out)
				index[a.Name] = i
				seen[a.Name] = make(map[string]struct{})
				out = append(out, Domain{Name: a.Name, Type: a.Type, Values: []string{}})
			}
			if a.Value.IsEmpty() {
				continue
			}
			v := a.Value.String()
			if _, dup := seen[a.Name][v]; dup {
				continue
			}
			seen[a.Name][v] = struct{}{}
			out[i].Values = append(out[i].Values, v)
		}
	}

	for i := range out {
		out[i].Widget = widgetFor(out[i])
	}
	return out
}

func widgetFor(d Domain) Widget {
	switch {
	case d.Type == domain.AttributeTypeBoolean:
		return WidgetTriState
	case len(d.Values) >= 1 && len(d.Values) <= maxMultiSelectValues:
		return WidgetMultiSelect
	default:
		return WidgetText
	}
}

// Apply returns the entities of typeID (any type when empty) that pass
// every active filter. It is pure and keeps input order.
func Apply(entities []domain.Entity, typeID string, filters []domain.AttributeFilter) []domain.Entity {
	active := make([]domain.AttributeFilter, 0, len(filters))
	for _, f := range filters {
		if f.IsActive() {
			active = append(active, f)
		}
	}

	out := make([]domain.Entity, 0, len(entities))
	for _, e := range Candidates(entities, typeID) {
		if matchesAll(&e, active) {
			out = append(out, e)
		}
	}
	return out
}

func matchesAll(e *domain.Entity, filters []domain.AttributeFilter) bool {
	for _, f := range filters {
		if !matches(e, f) {
			return false
		}
	}
	return true
}

// matches checks one active filter. An entity without the attribute, or
// with no value for it, fails.
func matches(e *domain.Entity, f domain.AttributeFilter) bool {
	a, ok := e.Attribute(f.Name)
	if !ok || a.Value.IsEmpty() {
		return false
	}
	v := a.Value.String()

	if f.AnyOf != nil {
		for _, want := range f.AnyOf {
			if v == want {
				return true
			}
		}
		return false
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(f.Text))
}
