// Package domtree converts the in-memory decoded record tree into a
// generic, serialization-ready shape: byte slices become arrays of
// integers (or upper-case hex, for XML), TimeReal values become their raw
// u32 plus a derived calendar string, and everything else is walked
// structurally so JSON and XML output reflect the same tree.
package domtree

import (
	"fmt"
	"reflect"

	"github.com/fleetcodec/tachograph-go/internal/dd"
)

// RawBytes is a byte slice tagged for the integer-array / hex-string
// serialization the tree applies to every binary field.
type RawBytes []byte

// TimeRealView is the serialized shape of a dd.TimeReal: its raw seconds
// count plus the derived "YYYY-MM-DD HH:MM:SS" calendar string.
type TimeRealView struct {
	Seconds   uint32 `json:"seconds" xml:"seconds"`
	Formatted string `json:"formatted" xml:"formatted"`
}

var timeRealType = reflect.TypeOf(dd.TimeReal{})

// Convert walks v (typically a *TachographData or one of its nested
// records) and returns a generic tree built from map[string]any,
// []any, RawBytes, TimeRealView, and Go primitive leaves.
func Convert(v any) any {
	if v == nil {
		return nil
	}
	return convertValue(reflect.ValueOf(v))
}

func convertValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return convertValue(v.Elem())

	case reflect.Struct:
		if v.Type() == timeRealType {
			tr := v.Interface().(dd.TimeReal)
			return TimeRealView{Seconds: tr.Raw, Formatted: tr.Format()}
		}
		out := make(map[string]any, v.NumField())
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue // unexported
			}
			out[field.Name] = convertValue(v.Field(i))
		}
		return out

	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return bytesOf(v)
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = convertValue(v.Index(i))
		}
		return out

	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = convertValue(iter.Value())
		}
		return out

	default:
		if stringer, ok := v.Interface().(fmt.Stringer); ok {
			return stringer.String()
		}
		return v.Interface()
	}
}

func bytesOf(v reflect.Value) RawBytes {
	if v.Kind() == reflect.Slice {
		return RawBytes(v.Bytes())
	}
	out := make(RawBytes, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = byte(v.Index(i).Uint())
	}
	return out
}
