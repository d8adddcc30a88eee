package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FirestoreEvent is the change notification delivered for a document write.
// OldValue is empty on create; Value is empty on delete.
type FirestoreEvent struct {
	OldValue   FirestoreValue `json:"oldValue"`
	Value      FirestoreValue `json:"value"`
	UpdateMask UpdateMask     `json:"updateMask"`
}

type UpdateMask struct {
	FieldPaths []string `json:"fieldPaths"`
}

// FirestoreValue is one document snapshot inside an event.
type FirestoreValue struct {
	CreateTime time.Time        `json:"createTime"`
	Fields     map[string]Value `json:"fields"`
	Name       string           `json:"name"`
	UpdateTime time.Time        `json:"updateTime"`
}

// Exists reports whether the snapshot carries a document.
func (v FirestoreValue) Exists() bool {
	return v.Name != ""
}

// Value is a Firestore typed value; exactly one field is set.
type Value struct {
	NullValue      json.RawMessage `json:"nullValue,omitempty"`
	BooleanValue   *bool           `json:"booleanValue,omitempty"`
	IntegerValue   *string         `json:"integerValue,omitempty"`
	DoubleValue    *float64        `json:"doubleValue,omitempty"`
	TimestampValue *time.Time      `json:"timestampValue,omitempty"`
	StringValue    *string         `json:"stringValue,omitempty"`
	BytesValue     *string         `json:"bytesValue,omitempty"`
	ReferenceValue *string         `json:"referenceValue,omitempty"`
	GeoPointValue  *GeoPoint       `json:"geoPointValue,omitempty"`
	ArrayValue     *ArrayValue     `json:"arrayValue,omitempty"`
	MapValue       *MapValue       `json:"mapValue,omitempty"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ArrayValue struct {
	Values []Value `json:"values"`
}

type MapValue struct {
	Fields map[string]Value `json:"fields"`
}

// Interface converts the typed value into plain Go values.
func (v Value) Interface() (interface{}, error) {
	switch {
	case v.BooleanValue != nil:
		return *v.BooleanValue, nil
	case v.IntegerValue != nil:
		n, err := strconv.ParseInt(*v.IntegerValue, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integerValue %q: %w", *v.IntegerValue, err)
		}
		return n, nil
	case v.DoubleValue != nil:
		return *v.DoubleValue, nil
	case v.TimestampValue != nil:
		return *v.TimestampValue, nil
	case v.StringValue != nil:
		return *v.StringValue, nil
	case v.BytesValue != nil:
		return *v.BytesValue, nil
	case v.ReferenceValue != nil:
		return *v.ReferenceValue, nil
	case v.GeoPointValue != nil:
		return *v.GeoPointValue, nil
	case v.ArrayValue != nil:
		out := make([]interface{}, 0, len(v.ArrayValue.Values))
		for i, elem := range v.ArrayValue.Values {
			x, err := elem.Interface()
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, x)
		}
		return out, nil
	case v.MapValue != nil:
		return fieldsToMap(v.MapValue.Fields)
	default:
		return nil, nil
	}
}

func fieldsToMap(fields map[string]Value) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for name, v := range fields {
		x, err := v.Interface()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = x
	}
	return out, nil
}
