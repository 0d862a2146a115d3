package flatten

import (
	"strings"
	"unicode"
)

// Object flattens nested objects, e.g. {"key1":{"key2":123}} to {"key1_key2":123}.
// Arrays are kept as values. Keys are passed through Reformat.
func Object(json map[string]any) map[string]any {
	flattenMap := make(map[string]any, len(json))
	for key, value := range json {
		flatten(Reformat(key), value, flattenMap)
	}

	emptyKeyValue, hasEmptyKey := flattenMap[""]
	if hasEmptyKey {
		flattenMap["_unnamed"] = emptyKeyValue
		delete(flattenMap, "")
	}
	return flattenMap
}

func flatten(key string, value any, destination map[string]any) {
	unboxed, ok := value.(map[string]any)
	if !ok {
		destination[key] = value
		return
	}
	// an empty object keeps its key
	if len(unboxed) == 0 {
		destination[key] = unboxed
		return
	}
	for k, v := range unboxed {
		newKey := Reformat(k)
		if key != "" {
			newKey = key + "_" + newKey
		}
		flatten(newKey, v, destination)
	}
}

// Reformat lower cases key and replaces every symbol that is not a letter or
// digit with '_'.
func Reformat(key string) string {
	key = strings.ToLower(key)
	var result strings.Builder
	for _, symbol := range key {
		if unicode.IsLetter(symbol) || unicode.IsDigit(symbol) {
			result.WriteRune(symbol)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}
