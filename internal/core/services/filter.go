package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// applyFilter evaluates a JSONPath expression on the JSON array of items
// and decodes the selected records back. An expression that selects
// something other than whole records is invalid input.
func applyFilter[T any](items []T, filter string) ([]T, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return items, nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	selected, err := jsonpath.Get(filter, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: filter %q: %v", domain.ErrInvalidInput, filter, err)
	}
	if _, isList := selected.([]any); !isList {
		selected = []any{selected}
	}

	data, err = json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("encode filtered records: %w", err)
	}
	filtered := make([]T, 0)
	if err := json.Unmarshal(data, &filtered); err != nil {
		return nil, fmt.Errorf("%w: filter %q does not select whole records", domain.ErrInvalidInput, filter)
	}
	return filtered, nil
}
