package jsonpatch

import (
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Operation is one RFC 6902 operation. Value is written for add and replace
// even when it is null, false or zero.
type Operation struct {
	Op    string
	Path  string
	Value any
}

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == OpRemove {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Patch is an ordered list of operations. An empty Patch marshals as [].
type Patch []Operation

func (p Patch) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Operation(p))
}

// Between diffs the JSON encodings of two values. Both are marshalled and
// decoded back into generic form first, so struct tags decide the paths.
func Between(a, b any) (Patch, error) {
	ga, err := generic(a)
	if err != nil {
		return nil, err
	}
	gb, err := generic(b)
	if err != nil {
		return nil, err
	}
	return Diff(ga, gb, ""), nil
}

func generic(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Diff computes the patch that turns a into b. Both must be generic JSON
// values (maps, slices, strings, float64, bool, nil); path is "" for the
// document root. Object keys are visited in sorted order so the output is
// stable.
func Diff(a, b any, path string) Patch {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return Patch{replace(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return Patch{replace(path, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) Patch {
	var ops Patch

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, Operation{Op: OpRemove, Path: path + "/" + escapeKey(k)})
		}
	}

	for _, k := range sortedKeys(b) {
		child := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, Operation{Op: OpAdd, Path: child, Value: b[k]})
			continue
		}
		ops = append(ops, Diff(av, b[k], child)...)
	}

	return ops
}

func diffArrays(a, b []any, path string) Patch {
	var ops Patch

	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Remove from the tail so earlier indexes stay valid.
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, Operation{Op: OpRemove, Path: path + "/" + strconv.Itoa(i)})
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, Operation{Op: OpAdd, Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}

	return ops
}

func replace(path string, value any) Operation {
	return Operation{Op: OpReplace, Path: path, Value: value}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
