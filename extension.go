package pathlex

// FindExtension returns the index in name at which its extension starts,
// or len(name) if it has none.
//
// name is a filename with any alternate data stream already removed.
// The extension starts at the last dot that is not the first unit of name.
// The names . and .. have no extension, and neither does a name whose only
// dot leads it. A trailing dot is an extension of its own.
//
//	"archive.tar.gz"  ".gz"
//	".bashrc"         ""
//	"x."              "."
//	".."              ""
func FindExtension[S ~[]C, C Char](name S) int {
	n := len(name)
	if n <= 1 {
		return n
	}
	if name[n-1] == '.' {
		if n == 2 && name[0] == '.' {
			return n
		}
		return n - 1
	}
	for i := n - 2; i > 0; i-- {
		if name[i] == '.' {
			return i
		}
	}
	return n
}

// FindStreamStart returns the index of the first colon in name, which
// starts its alternate data stream, or len(name) if it has none.
func FindStreamStart[S ~[]C, C Char](name S) int {
	for i, c := range name {
		if c == ':' {
			return i
		}
	}
	return len(name)
}

// Stem returns the filename of p without its extension or alternate data
// stream.
//
// Examples:
//
//	Stem(`dir\archive.tar.gz`)  // `archive.tar`
//	Stem(`..`)                  // `..`
//	Stem(`.bashrc`)             // `.bashrc`
//	Stem(`name:stream`)         // `name`
func Stem[S ~[]C, C Char](p S) S {
	name := Filename(p)
	name = name[:FindStreamStart(name)]
	return name[:FindExtension(name)]
}

// Extension returns the extension of the filename of p, including its dot.
// An alternate data stream is never part of the extension.
//
// Examples:
//
//	Extension(`dir\archive.tar.gz`)  // `.gz`
//	Extension(`x.`)                  // `.`
//	Extension(`..`)                  // ``
//	Extension(`a.txt:stream`)        // `.txt`
func Extension[S ~[]C, C Char](p S) S {
	name := Filename(p)
	name = name[:FindStreamStart(name)]
	return name[FindExtension(name):]
}
