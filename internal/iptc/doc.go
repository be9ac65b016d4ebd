// Package iptc reads IPTC keywords embedded in image files.
//
// Keywords are IIM datasets 2:25 stored inside a Photoshop image resource
// block (resource 0x0404). The block is found in the APP13 segments of a
// JPEG file or in the image resources section of a PSD file.
//
// The embedded store is read-only: this package has no writer. Files that
// are not images, or carry no IPTC block, have no keywords.
package iptc
