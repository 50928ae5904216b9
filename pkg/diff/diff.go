package diff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/wI2L/jsondiff"
)

type PatchOp struct {
	Op       string      `json:"op"`
	Actor    string      `json:"actor,omitempty"`
	Path     string      `json:"path"`
	NewValue interface{} `json:"new_value,omitempty"`
	OldValue interface{} `json:"old_value,omitempty"`
}

// GetChangelog compares the JSON representations of before and after and
// returns one operation per changed field. Paths use dot notation. Removed
// and replaced fields carry their previous value.
func GetChangelog(actor string, before, after interface{}) ([]*PatchOp, error) {
	jsonBefore, err := json.Marshal(before)
	if err != nil {
		return nil, fmt.Errorf("marshalling old value: %w", err)
	}
	jsonAfter, err := json.Marshal(after)
	if err != nil {
		return nil, fmt.Errorf("marshalling new value: %w", err)
	}

	patch, err := jsondiff.CompareJSON(jsonBefore, jsonAfter)
	if err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return nil, nil
	}

	var original interface{}
	if err := json.Unmarshal(jsonBefore, &original); err != nil {
		return nil, err
	}

	var changelog []*PatchOp
	for _, op := range patch {
		segments := splitPointer(op.Path)
		entry := &PatchOp{
			Op:       op.Type,
			Actor:    actor,
			Path:     strings.Join(segments, "."),
			NewValue: op.Value,
		}

		if op.Type == jsondiff.OperationRemove || op.Type == jsondiff.OperationReplace {
			oldValue, err := lookup(original, segments)
			if err != nil {
				return nil, fmt.Errorf("resolving %q: %w", op.Path, err)
			}
			entry.OldValue = oldValue
		}

		changelog = append(changelog, entry)
	}

	return changelog, nil
}

func lookup(document interface{}, segments []string) (interface{}, error) {
	current := document
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]interface{}:
			current = node[segment]
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("invalid array index: %s", segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index out of range: %d", index)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q", segment)
		}
	}
	return current, nil
}

// splitPointer decodes an RFC 6901 JSON pointer into its reference tokens
func splitPointer(pointer string) []string {
	if pointer == "" || pointer == "/" {
		return []string{}
	}

	segments := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i := range segments {
		segments[i] = strings.ReplaceAll(segments[i], "~1", "/")
		segments[i] = strings.ReplaceAll(segments[i], "~0", "~")
	}
	return segments
}
