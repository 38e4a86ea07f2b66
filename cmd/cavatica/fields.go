package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

// parseFields turns key=value pairs into Fields. Values that are valid JSON
// (true, 12, {"a": 1}) are decoded, anything else is kept as a string.
func parseFields(in []string) (structs.Fields, error) {
	out := structs.Fields{}
	for _, kv := range in {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w field %q is not key=value", errors.ErrInvalidArg, kv)
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			out[key] = decoded
		} else {
			out[key] = value
		}
	}
	return out, nil
}

// loadJobFile reads a YAML / JSON / TOML job description into out.
//
// Nb. keys are case-insensitive, so optional field names are lower cased.
func loadJobFile(path string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w reading job file: %v", errors.ErrInvalidArg, err)
	}
	return v.Unmarshal(out)
}

// firstSet returns the first non empty string
func firstSet(in ...string) string {
	for _, s := range in {
		if s != "" {
			return s
		}
	}
	return ""
}

// merge returns a copy of a with keys from b set over it
func merge(a, b structs.Fields) structs.Fields {
	out := structs.Fields{}
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
