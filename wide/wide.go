// Package wide decomposes paths held as UTF-16 code units, the form
// Windows system calls use.
//
// It is the wide instantiation of the [lesiw.io/pathlex] grammar.
// Every function that returns a []uint16 returns a sub-slice of its
// argument, so no memory is allocated and the result aliases the input.
//
//	p := utf16.Encode([]rune(`C:\foo\bar.txt`))
//	wide.Filename(p) // bar.txt, a view into p
//
// Surrogate pairs never contain \, /, : or ., so paths outside the Basic
// Multilingual Plane decompose correctly.
package wide

import "lesiw.io/pathlex"

// ASCIILower returns the lowercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIILower(c uint16) uint16 { return pathlex.ASCIILower(c) }

// ASCIIUpper returns the uppercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIIUpper(c uint16) uint16 { return pathlex.ASCIIUpper(c) }

// IsSlash reports whether c is \ or /.
func IsSlash(c uint16) bool { return pathlex.IsSlash(c) }

// IsDrivePrefix reports whether p starts with X:.
// p must hold at least two units; IsDrivePrefix panics otherwise.
func IsDrivePrefix(p []uint16) bool { return pathlex.IsDrivePrefix(p) }

// HasDriveLetterPrefix reports whether p starts with X:.
func HasDriveLetterPrefix(p []uint16) bool {
	return pathlex.HasDriveLetterPrefix(p)
}

// FindRootNameEnd returns the index at which the root-name of p ends,
// or 0 if p has none.
func FindRootNameEnd(p []uint16) int { return pathlex.FindRootNameEnd(p) }

// RootName returns the root-name of p.
func RootName(p []uint16) []uint16 { return pathlex.RootName(p) }

// FindRelativePath returns the index at which the relative-path of p
// starts.
func FindRelativePath(p []uint16) int { return pathlex.FindRelativePath(p) }

// RelativePath returns p without its root-name and root-directory.
func RelativePath(p []uint16) []uint16 { return pathlex.RelativePath(p) }

// RootDirectory returns the separators between the root-name of p and its
// relative-path.
func RootDirectory(p []uint16) []uint16 { return pathlex.RootDirectory(p) }

// RootPath returns the root-name of p followed by its root-directory.
func RootPath(p []uint16) []uint16 { return pathlex.RootPath(p) }

// ParentPath returns p without its filename and the separators before it.
func ParentPath(p []uint16) []uint16 { return pathlex.ParentPath(p) }

// FindFilename returns the index at which the filename of p starts.
func FindFilename(p []uint16) int { return pathlex.FindFilename(p) }

// Filename returns the last element of p, empty if p ends in a separator.
func Filename(p []uint16) []uint16 { return pathlex.Filename(p) }

// Split splits p immediately after its parent path.
func Split(p []uint16) (parent, child []uint16) { return pathlex.Split(p) }

// FindExtension returns the index in name at which its extension starts,
// or len(name). name must not contain an alternate data stream.
func FindExtension(name []uint16) int { return pathlex.FindExtension(name) }

// FindStreamStart returns the index of the colon that starts the
// alternate data stream of name, or len(name).
func FindStreamStart(name []uint16) int {
	return pathlex.FindStreamStart(name)
}

// Stem returns the filename of p without its extension or alternate data
// stream.
func Stem(p []uint16) []uint16 { return pathlex.Stem(p) }

// Extension returns the extension of the filename of p, including its dot.
func Extension(p []uint16) []uint16 { return pathlex.Extension(p) }
