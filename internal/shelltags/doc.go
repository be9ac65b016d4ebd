// Package shelltags reads and writes the desktop-shell tag store.
//
// Shell tags live in a file's extended attributes under a well-known key.
// The attribute value is a property list holding an array of strings; it is
// written in the binary property list format. A missing attribute is an
// empty tag set, not an error.
package shelltags
