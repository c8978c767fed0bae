package setting

import "sort"

const (
	SourceDatabase = "database"
	SourceDefault  = "default"
)

// ConfigValue is a runtime setting with where its value came from.
type ConfigValue struct {
	Key    string
	Value  string
	Source string
}

// Resolve overlays stored settings on defaults. Counter keys are excluded;
// case overrides are included. The result is ordered by key.
func Resolve(stored []*Setting, defaults map[string]string) []ConfigValue {
	merged := make(map[string]ConfigValue, len(defaults)+len(stored))
	for k, v := range defaults {
		merged[k] = ConfigValue{Key: k, Value: v, Source: SourceDefault}
	}
	for _, s := range stored {
		if _, known := writableKeys[s.Key()]; !known && !IsCaseAllowExceedKey(s.Key()) {
			continue
		}
		merged[s.Key()] = ConfigValue{Key: s.Key(), Value: s.Value(), Source: SourceDatabase}
	}

	out := make([]ConfigValue, 0, len(merged))
	for _, v := range merged {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
