package shelltags

import "golang.org/x/sys/unix"

// DefaultAttribute mirrors the Finder key inside the user namespace, the
// only namespace unprivileged processes may write on regular files.
const DefaultAttribute = "user.com.apple.metadata:_kMDItemUserTags"

const errNoAttr = unix.ENODATA
