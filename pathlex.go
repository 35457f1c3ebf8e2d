// Package pathlex decomposes Windows-style filesystem paths into their
// lexical components without allocating.
//
// The grammar is the one used by the generic path format of
// std::filesystem on Windows:
//
//	C:\Users\foo.txt
//	^^                root-name
//	  ^               root-directory
//	   ^^^^^^^^^^^^^  relative-path
//	^^^^^^^^          parent-path
//	         ^^^^^^^  filename
//	         ^^^      stem
//	            ^^^^  extension
//
// Root names are drive letters (C:), UNC servers (\\server) and the device
// namespaces \\?\, \\.\ and \??\. Both \ and / are separators. A colon
// inside a filename starts an alternate data stream, which is excluded
// from the stem and extension.
//
// Every function is a pure lexical operation over a borrowed span of code
// units. Functions named Find* return a boundary index into their
// argument. The remaining functions return a sub-slice of their argument,
// so the result shares the caller's storage and nothing is copied.
//
// The functions here are generic over the code unit width. Most callers
// want one of the fixed-width instantiations:
//
//   - [lesiw.io/pathlex/narrow] for 8-bit units held in a string.
//   - [lesiw.io/pathlex/wide] for UTF-16 units held in a []uint16.
//
// Examples in this package write a span as the text it holds.
//
// No function accesses the filesystem, normalizes, compares or joins
// paths.
package pathlex

// A Char is a code unit of a path: 8-bit for narrow paths, 16-bit for
// wide ones.
type Char interface {
	~byte | ~uint16
}

// ASCIILower returns the lowercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIILower[C Char](c C) C {
	return c | ('a' - 'A')
}

// ASCIIUpper returns the uppercase form of an ASCII letter.
// The result is meaningless for anything other than A-Z and a-z.
func ASCIIUpper[C Char](c C) C {
	return c &^ ('a' - 'A')
}

// IsSlash reports whether c is a directory separator, \ or /.
func IsSlash[C Char](c C) bool {
	return c == '\\' || c == '/'
}

// IsDrivePrefix reports whether p starts with a drive prefix of the form
// X:, where X is an ASCII letter in either case.
//
// p must hold at least two code units; IsDrivePrefix panics otherwise.
// Use [HasDriveLetterPrefix] when the length is not known.
func IsDrivePrefix[S ~[]C, C Char](p S) bool {
	return ASCIILower(p[0])-'a' < 26 && p[1] == ':'
}

// HasDriveLetterPrefix reports whether p starts with a drive prefix of the
// form X:.
//
// Examples:
//
//	HasDriveLetterPrefix("c:")   // true
//	HasDriveLetterPrefix("C:\\") // true
//	HasDriveLetterPrefix("1:")   // false
//	HasDriveLetterPrefix("c")    // false
func HasDriveLetterPrefix[S ~[]C, C Char](p S) bool {
	return len(p) >= 2 && IsDrivePrefix(p)
}
