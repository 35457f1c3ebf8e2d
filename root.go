package pathlex

// FindRootNameEnd returns the index at which the root-name of p ends,
// or 0 if p has no root-name.
//
// Recognized root-names:
//
//	X:DriveRelative, X:\DosAbsolute  X: is the root-name.
//	\RootRelative                    No root-name; \ is root-directory.
//	\\server\share                   \\server is the root-name and share
//	                                 the first element of relative-path.
//	\\?\device, \\.\device, \??\device
//	                                 The first three units are the
//	                                 root-name and the following slash
//	                                 the root-directory.
//	\\?\UNC\server\share             Treated like \\?\device.
//
// Slashes may be \ or / in any position.
func FindRootNameEnd[S ~[]C, C Char](p S) int {
	if len(p) < 2 {
		return 0
	}

	// X: is the most common root-name.
	if HasDriveLetterPrefix(p) {
		return 2
	}

	// Every other root-name starts with a slash.
	if !IsSlash(p[0]) {
		return 0
	}

	// \xx\$ where $ is anything but a slash, including the end of p.
	if len(p) >= 4 && IsSlash(p[3]) && (len(p) == 4 || !IsSlash(p[4])) &&
		((IsSlash(p[1]) && (p[2] == '?' || p[2] == '.')) ||
			(p[1] == '?' && p[2] == '?')) {
		return 3
	}

	// \\server
	if len(p) >= 3 && IsSlash(p[1]) && !IsSlash(p[2]) {
		return 3 + indexSlash(p[3:])
	}

	return 0
}

// RootName returns the root-name of p, or an empty view if p has none.
//
// Examples:
//
//	RootName(`C:\foo\bar`)       // `C:`
//	RootName(`\\server\share\x`) // `\\server`
//	RootName(`\\?\C:\x`)         // `\\?`
//	RootName(`\foo`)             // ``
func RootName[S ~[]C, C Char](p S) S {
	return p[:FindRootNameEnd(p)]
}

// FindRelativePath returns the index at which the relative-path of p
// starts. That is the first unit after the root-name that is not a slash,
// or len(p) if only slashes follow the root-name.
func FindRelativePath[S ~[]C, C Char](p S) int {
	i := FindRootNameEnd(p)
	for i < len(p) && IsSlash(p[i]) {
		i++
	}
	return i
}

// RelativePath returns everything in p after its root-name and
// root-directory.
//
// Examples:
//
//	RelativePath(`C:\foo\bar`)       // `foo\bar`
//	RelativePath(`\\server\share\x`) // `share\x`
//	RelativePath(`C:foo`)            // `foo`
//	RelativePath(`//`)               // ``
func RelativePath[S ~[]C, C Char](p S) S {
	return p[FindRelativePath(p):]
}

// RootDirectory returns the separators between the root-name of p and its
// relative-path. It is empty for relative and drive-relative paths.
//
// Examples:
//
//	RootDirectory(`C:\foo`)   // `\`
//	RootDirectory(`C:foo`)    // ``
//	RootDirectory(`//\/foo`)  // `//\/`
func RootDirectory[S ~[]C, C Char](p S) S {
	return p[FindRootNameEnd(p):FindRelativePath(p)]
}

// RootPath returns the root-name of p followed by its root-directory.
//
// Examples:
//
//	RootPath(`C:\foo`)           // `C:\`
//	RootPath(`\\server\share`)   // `\\server\`
//	RootPath(`foo\bar`)          // ``
func RootPath[S ~[]C, C Char](p S) S {
	return p[:FindRelativePath(p)]
}

// indexSlash returns the index of the first slash in p, or len(p).
func indexSlash[S ~[]C, C Char](p S) int {
	for i, c := range p {
		if IsSlash(c) {
			return i
		}
	}
	return len(p)
}
