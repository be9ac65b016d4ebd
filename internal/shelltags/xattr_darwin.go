package shelltags

import "golang.org/x/sys/unix"

// DefaultAttribute is the Finder user tag attribute.
const DefaultAttribute = "com.apple.metadata:_kMDItemUserTags"

const errNoAttr = unix.ENOATTR
