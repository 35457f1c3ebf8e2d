// Package narrow decomposes paths held as strings of 8-bit code units.
//
// It is the narrow instantiation of the [lesiw.io/pathlex] grammar.
// Every function that returns a string returns a substring of its
// argument, so no memory is allocated.
//
//	narrow.RootName(`C:\foo\bar`)      // `C:`
//	narrow.ParentPath(`C:\foo\bar`)    // `C:\foo`
//	narrow.Extension("archive.tar.gz") // ".gz"
//
// Only the ASCII subset matters to the grammar. Multi-byte UTF-8
// sequences never contain \, /, : or ., so UTF-8 paths decompose
// correctly.
package narrow

import (
	"unsafe"

	"lesiw.io/pathlex"
)

// units views the bytes of s without copying them.
// The grammar only reads its input, so the view is never written.
func units(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ASCIILower returns the lowercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIILower(c byte) byte { return pathlex.ASCIILower(c) }

// ASCIIUpper returns the uppercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIIUpper(c byte) byte { return pathlex.ASCIIUpper(c) }

// IsSlash reports whether c is \ or /.
func IsSlash(c byte) bool { return pathlex.IsSlash(c) }

// IsDrivePrefix reports whether p starts with X:.
// p must be at least two bytes long; IsDrivePrefix panics otherwise.
func IsDrivePrefix(p string) bool {
	return pathlex.IsDrivePrefix(units(p))
}

// HasDriveLetterPrefix reports whether p starts with X:.
func HasDriveLetterPrefix(p string) bool {
	return pathlex.HasDriveLetterPrefix(units(p))
}

// FindRootNameEnd returns the index at which the root-name of p ends,
// or 0 if p has none.
func FindRootNameEnd(p string) int {
	return pathlex.FindRootNameEnd(units(p))
}

// RootName returns the root-name of p: a drive (C:), a server (\\server)
// or a device namespace (\\?, \\., \??).
func RootName(p string) string {
	return p[:FindRootNameEnd(p)]
}

// FindRelativePath returns the index at which the relative-path of p
// starts.
func FindRelativePath(p string) int {
	return pathlex.FindRelativePath(units(p))
}

// RelativePath returns p without its root-name and root-directory.
func RelativePath(p string) string {
	return p[FindRelativePath(p):]
}

// RootDirectory returns the separators between the root-name of p and its
// relative-path.
func RootDirectory(p string) string {
	return p[FindRootNameEnd(p):FindRelativePath(p)]
}

// RootPath returns the root-name of p followed by its root-directory.
func RootPath(p string) string {
	return p[:FindRelativePath(p)]
}

// ParentPath returns p without its filename and the separators before it.
func ParentPath(p string) string {
	return p[:len(pathlex.ParentPath(units(p)))]
}

// FindFilename returns the index at which the filename of p starts.
func FindFilename(p string) int {
	return pathlex.FindFilename(units(p))
}

// Filename returns the last element of p, or "" if p ends in a separator.
func Filename(p string) string {
	return p[FindFilename(p):]
}

// Split splits p immediately after its parent path.
// parent + child is always p.
func Split(p string) (parent, child string) {
	parent = ParentPath(p)
	return parent, p[len(parent):]
}

// FindExtension returns the index in name at which its extension starts,
// or len(name). name must not contain an alternate data stream.
func FindExtension(name string) int {
	return pathlex.FindExtension(units(name))
}

// FindStreamStart returns the index of the colon that starts the
// alternate data stream of name, or len(name).
func FindStreamStart(name string) int {
	return pathlex.FindStreamStart(units(name))
}

// Stem returns the filename of p without its extension or alternate data
// stream.
func Stem(p string) string {
	name := streamless(p)
	return name[:FindExtension(name)]
}

// Extension returns the extension of the filename of p, including its dot.
func Extension(p string) string {
	name := streamless(p)
	return name[FindExtension(name):]
}

// streamless returns the filename of p up to its alternate data stream.
func streamless(p string) string {
	name := Filename(p)
	return name[:FindStreamStart(name)]
}
