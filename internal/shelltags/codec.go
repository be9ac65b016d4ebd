package shelltags

import (
	"fmt"

	"howett.net/plist"

	"github.com/danieljhkim/tagsync/internal/tagset"
)

// Decode parses an attribute value into a TagSet. Any property list format
// is accepted. A payload that is not an array made only of strings yields
// an empty set.
func Decode(data []byte) (tagset.TagSet, error) {
	if len(data) == 0 {
		return tagset.New(), nil
	}

	var raw interface{}
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return tagset.New(), fmt.Errorf("failed to decode tag list: %w", err)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return tagset.New(), nil
	}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return tagset.New(), nil
		}
		labels = append(labels, s)
	}
	return tagset.New(labels...), nil
}

// Encode serializes a TagSet as a binary property list array. Element
// order follows set iteration order and is not stable between calls.
func Encode(tags tagset.TagSet) ([]byte, error) {
	data, err := plist.Marshal(tags.Slice(), plist.BinaryFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tag list: %w", err)
	}
	return data, nil
}
