package config

import (
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeHookParseDuration parses duration config values, treating a
// bare number as seconds.
func DecodeHookParseDuration() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		raw := data.(string)
		if _, err := strconv.Atoi(raw); err == nil {
			raw = raw + "s"
		}

		return time.ParseDuration(raw)
	}
}
