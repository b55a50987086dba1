package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// Value is an attribute value tagged with its declared type.
// The zero Value is empty.
type Value struct {
	typ  AttributeType
	str  string
	num  float64
	b    bool
	t    time.Time
	raw  json.RawMessage
	date bool // t carries no clock component
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{typ: AttributeTypeString, str: s}
}

// NumberValue returns a number value. n must be finite.
func NumberValue(n float64) Value {
	return Value{typ: AttributeTypeNumber, num: n}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{typ: AttributeTypeBoolean, b: b}
}

// DateValue returns a date value. Times at UTC midnight are rendered as plain dates.
func DateValue(t time.Time) Value {
	t = t.UTC()
	return Value{typ: AttributeTypeDate, t: t, date: t.Equal(t.Truncate(24 * time.Hour))}
}

// JSONValue returns a json value after checking raw is a single well-formed document.
func JSONValue(raw json.RawMessage) (Value, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Value{}, fmt.Errorf("malformed json: %w", err)
	}
	return Value{typ: AttributeTypeJSON, raw: buf.Bytes()}, nil
}

// Type returns the value's tag. Empty values report "".
func (v Value) Type() AttributeType { return v.typ }

// IsEmpty reports whether the value is absent or an empty string.
func (v Value) IsEmpty() bool {
	switch v.typ {
	case "":
		return true
	case AttributeTypeString:
		return v.str == ""
	case AttributeTypeJSON:
		return len(v.raw) == 0
	}
	return false
}

// Number returns the numeric content and whether v is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.typ == AttributeTypeNumber
}

// Bool returns the boolean content and whether v is a boolean.
func (v Value) Bool() (bool, bool) {
	return v.b, v.typ == AttributeTypeBoolean
}

// String renders the value the way it is compared by filters and shown in facets.
func (v Value) String() string {
	switch v.typ {
	case AttributeTypeString:
		return v.str
	case AttributeTypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case AttributeTypeBoolean:
		return strconv.FormatBool(v.b)
	case AttributeTypeDate:
		if v.date {
			return v.t.Format(dateOnlyLayout)
		}
		return v.t.Format(time.RFC3339)
	case AttributeTypeJSON:
		return string(v.raw)
	}
	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case "":
		return []byte("null"), nil
	case AttributeTypeNumber:
		return json.Marshal(v.num)
	case AttributeTypeBoolean:
		return json.Marshal(v.b)
	case AttributeTypeJSON:
		return v.raw, nil
	}
	return json.Marshal(v.String())
}

// ParseValue decodes raw as a value of type typ. null and missing input
// produce the empty Value. Form input arrives as strings, so numbers,
// booleans and json documents are also accepted in quoted form.
func ParseValue(typ AttributeType, raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Value{}, nil
	}

	var s string
	quoted := raw[0] == '"'
	if quoted {
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("malformed string: %w", err)
		}
	}

	switch typ {
	case AttributeTypeString:
		if !quoted {
			return Value{}, errors.New("expected string")
		}
		return StringValue(s), nil

	case AttributeTypeNumber:
		if quoted {
			if strings.TrimSpace(s) == "" {
				return Value{}, nil
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return Value{}, fmt.Errorf("expected number, got %q", s)
			}
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return Value{}, fmt.Errorf("expected finite number, got %q", s)
			}
			return NumberValue(n), nil
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return Value{}, errors.New("expected number")
		}
		return NumberValue(n), nil

	case AttributeTypeBoolean:
		if quoted {
			if s == "" {
				return Value{}, nil
			}
			b, err := strconv.ParseBool(s)
			if err != nil {
				return Value{}, fmt.Errorf("expected boolean, got %q", s)
			}
			return BoolValue(b), nil
		}
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, errors.New("expected boolean")
		}
		return BoolValue(b), nil

	case AttributeTypeDate:
		if !quoted {
			return Value{}, errors.New("expected date string")
		}
		if s == "" {
			return Value{}, nil
		}
		return parseDate(s)

	case AttributeTypeJSON:
		if quoted {
			if strings.TrimSpace(s) == "" {
				return Value{}, nil
			}
			return JSONValue(json.RawMessage(s))
		}
		return JSONValue(raw)
	}

	return Value{}, fmt.Errorf("unknown attribute type %q", typ)
}

func parseDate(s string) (Value, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateValue(t), nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return DateValue(t), nil
	}
	return Value{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD date, got %q", s)
}

// Attribute is a named, typed field of an entity type or entity.
type Attribute struct {
	Name          string
	Type          AttributeType
	Required      bool
	DefaultValue  Value
	IsUserDefined bool
	Value         Value
	NotApplicable bool
}

type attributeJSON struct {
	Name          string          `json:"name"`
	Type          AttributeType   `json:"type"`
	Required      bool            `json:"required"`
	DefaultValue  json.RawMessage `json:"defaultValue,omitempty"`
	IsUserDefined bool            `json:"isUserDefined"`
	Value         json.RawMessage `json:"value,omitempty"`
	NotApplicable bool            `json:"notApplicable,omitempty"`
}

func (a Attribute) MarshalJSON() ([]byte, error) {
	out := attributeJSON{
		Name:          a.Name,
		Type:          a.Type,
		Required:      a.Required,
		IsUserDefined: a.IsUserDefined,
		NotApplicable: a.NotApplicable,
	}
	var err error
	if !a.DefaultValue.IsEmpty() {
		if out.DefaultValue, err = a.DefaultValue.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	if !a.Value.IsEmpty() {
		if out.Value, err = a.Value.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an attribute and parses its values against the
// declared type, so a decoded Attribute never holds a mistyped value.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	var in attributeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !in.Type.IsValid() {
		return fmt.Errorf("attribute %q: unknown type %q", in.Name, in.Type)
	}

	def, err := ParseValue(in.Type, in.DefaultValue)
	if err != nil {
		return fmt.Errorf("attribute %q: defaultValue: %w", in.Name, err)
	}
	val, err := ParseValue(in.Type, in.Value)
	if err != nil {
		return fmt.Errorf("attribute %q: value: %w", in.Name, err)
	}

	*a = Attribute{
		Name:          in.Name,
		Type:          in.Type,
		Required:      in.Required,
		DefaultValue:  def,
		IsUserDefined: in.IsUserDefined,
		Value:         val,
		NotApplicable: in.NotApplicable,
	}
	return nil
}

// IsMissing reports whether a required, applicable attribute has no value.
func (a Attribute) IsMissing() bool {
	return a.Required && !a.NotApplicable && a.Value.IsEmpty()
}

// ValidateAttributes checks an attribute list and returns one FieldError per
// problem, keyed as "<field>[<index>].<property>". Predefined attribute lists
// (withValues=false) must not carry values.
func ValidateAttributes(field string, attrs []Attribute, withValues bool) []FieldError {
	var errs []FieldError
	seen := make(map[string]struct{}, len(attrs))

	for i, a := range attrs {
		prefix := fmt.Sprintf("%s[%d]", field, i)

		name := strings.TrimSpace(a.Name)
		if name == "" {
			errs = append(errs, FieldError{Field: prefix + ".name", Message: "required"})
		} else if _, dup := seen[name]; dup {
			errs = append(errs, FieldError{Field: prefix + ".name", Message: fmt.Sprintf("duplicate attribute %q", name)})
		} else {
			seen[name] = struct{}{}
		}

		if !a.Type.IsValid() {
			errs = append(errs, FieldError{Field: prefix + ".type", Message: fmt.Sprintf("unknown type %q", a.Type)})
			continue
		}
		if !a.DefaultValue.IsEmpty() && a.DefaultValue.Type() != a.Type {
			errs = append(errs, FieldError{Field: prefix + ".defaultValue", Message: "does not match attribute type"})
		}

		if a.Value.IsEmpty() {
			continue
		}
		switch {
		case !withValues:
			errs = append(errs, FieldError{Field: prefix + ".value", Message: "predefined attributes cannot carry a value"})
		case a.NotApplicable:
			errs = append(errs, FieldError{Field: prefix + ".value", Message: "not applicable attributes cannot carry a value"})
		case a.Value.Type() != a.Type:
			errs = append(errs, FieldError{Field: prefix + ".value", Message: "does not match attribute type"})
		}
	}

	return errs
}

// MissingAttributes returns the names of required, applicable attributes
// with no value, in list order. The result is never nil.
func MissingAttributes(attrs []Attribute) []string {
	missing := make([]string, 0)
	for _, a := range attrs {
		if a.IsMissing() {
			missing = append(missing, a.Name)
		}
	}
	return missing
}
