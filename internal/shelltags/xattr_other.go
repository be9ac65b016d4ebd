//go:build !darwin && !linux

package shelltags

// DefaultAttribute is the Finder user tag attribute.
const DefaultAttribute = "com.apple.metadata:_kMDItemUserTags"

func getxattr(path, attr string) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}

func setxattr(path, attr string, data []byte) error {
	return ErrUnsupportedPlatform
}
