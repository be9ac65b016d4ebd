package shelltags

import "github.com/danieljhkim/tagsync/internal/tagset"

// XattrStore implements Store on top of filesystem extended attributes.
type XattrStore struct {
	// Attribute is the extended attribute key holding the tag list
	Attribute string
}

// NewXattrStore creates a store using the given attribute key, or
// DefaultAttribute when key is empty.
func NewXattrStore(key string) *XattrStore {
	if key == "" {
		key = DefaultAttribute
	}
	return &XattrStore{Attribute: key}
}

// Read returns the decoded tags stored under the attribute key.
func (s *XattrStore) Read(path string) (tagset.TagSet, error) {
	data, err := getxattr(path, s.Attribute)
	if err != nil {
		return tagset.New(), err
	}
	return Decode(data)
}

// Write encodes tags and stores them under the attribute key.
func (s *XattrStore) Write(path string, tags tagset.TagSet) error {
	data, err := Encode(tags)
	if err != nil {
		return err
	}
	return setxattr(path, s.Attribute, data)
}
