//go:build darwin || linux

package shelltags

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// attrAbsent reports whether a getxattr error means there is no value.
// A filesystem without extended attribute support holds no tags; writing
// to it still fails.
func attrAbsent(err error) bool {
	return errors.Is(err, errNoAttr) || errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP)
}

// getxattr returns the attribute value, or nil when it is absent.
func getxattr(path, attr string) ([]byte, error) {
	for attempt := 0; attempt < 3; attempt++ {
		size, err := unix.Getxattr(path, attr, nil)
		if err != nil {
			if attrAbsent(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("getxattr %s: %w", attr, err)
		}
		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)
		n, err := unix.Getxattr(path, attr, buf)
		if err != nil {
			if attrAbsent(err) {
				return nil, nil
			}
			// Value grew between the two calls.
			if errors.Is(err, unix.ERANGE) {
				continue
			}
			return nil, fmt.Errorf("getxattr %s: %w", attr, err)
		}
		return buf[:n], nil
	}
	return nil, fmt.Errorf("getxattr %s: %w", attr, unix.ERANGE)
}

func setxattr(path, attr string, data []byte) error {
	if err := unix.Setxattr(path, attr, data, 0); err != nil {
		return fmt.Errorf("setxattr %s: %w", attr, err)
	}
	return nil
}
