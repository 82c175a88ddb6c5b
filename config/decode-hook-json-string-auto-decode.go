package config

import (
	"reflect"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// DecodeHookJsonStringAutoDecode lets env vars and flags carry JSON5
// payloads for slice and map config keys.
func DecodeHookJsonStringAutoDecode(m interface{}) func(rf reflect.Kind, rt reflect.Kind, data interface{}) (interface{}, error) {
	return func(rf reflect.Kind, rt reflect.Kind, data interface{}) (interface{}, error) {
		if rf != reflect.String ||
			rt == reflect.String ||
			rt == reflect.Bool ||
			rt == reflect.Int ||
			rt == reflect.Int8 ||
			rt == reflect.Int16 ||
			rt == reflect.Int32 ||
			rt == reflect.Int64 ||
			rt == reflect.Uint ||
			rt == reflect.Uint8 ||
			rt == reflect.Uint16 ||
			rt == reflect.Uint32 ||
			rt == reflect.Uint64 ||
			rt == reflect.Uintptr ||
			rt == reflect.Float32 ||
			rt == reflect.Float64 {
			return data, nil
		}

		raw := data.(string)
		if raw != "" && (raw[0:1] == "{" || raw[0:1] == "[") {
			err := json5.Unmarshal([]byte(raw), &m)
			return m, err
		}

		return data, nil
	}
}
