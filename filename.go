package pathlex

// ParentPath returns p with its final filename and the separators before
// it removed. The root-name and root-directory are never removed.
//
// Trailing separators are dropped along with the filename, so no "magic
// empty" final element is left behind:
//
//	ParentPath(`/cat/dog`)       // `/cat`
//	ParentPath(`/cat/dog/\//\`)  // `/cat/dog`
//	ParentPath(`C:\foo`)         // `C:\`
//	ParentPath(`C:\`)            // `C:\`
//	ParentPath(`foo`)            // ``
func ParentPath[S ~[]C, C Char](p S) S {
	rel := FindRelativePath(p)
	tail := len(p)
	// Remove the filename, leaving any separators before it.
	for tail > rel && !IsSlash(p[tail-1]) {
		tail--
	}
	// Remove those separators.
	for tail > rel && IsSlash(p[tail-1]) {
		tail--
	}
	return p[:tail]
}

// FindFilename returns the index at which the filename of p starts,
// or len(p) if p ends in a separator or has only a root.
func FindFilename[S ~[]C, C Char](p S) int {
	rel := FindRelativePath(p)
	i := len(p)
	for i > rel && !IsSlash(p[i-1]) {
		i--
	}
	return i
}

// Filename returns the last element of p.
// It is empty if p ends in a separator.
//
// Examples:
//
//	Filename(`C:\foo\bar`)  // `bar`
//	Filename(`/cat/dog/`)   // ``
//	Filename(`C:foo`)       // `foo`
//	Filename(`\\server`)    // ``
func Filename[S ~[]C, C Char](p S) S {
	return p[FindFilename(p):]
}

// Split splits p immediately after its parent path.
// The child holds the separators that followed the parent, if any, and
// then the filename. parent + child is always p.
//
// Examples:
//
//	Split(`C:\foo\bar`)  // `C:\foo`, `\bar`
//	Split(`C:\foo`)      // `C:\`, `foo`
//	Split(`foo`)         // ``, `foo`
func Split[S ~[]C, C Char](p S) (parent, child S) {
	parent = ParentPath(p)
	return parent, p[len(parent):]
}
