// Package lextest implements support for testing instantiations of the
// path grammar.
package lextest

import (
	"strings"
	"testing"
)

// A Lexer is one code unit width of the path grammar under test.
//
// Paths cross the interface as ASCII strings. Implementations convert
// them to their native units, call the function under test and convert
// the resulting view back. Index results are in code units, which match
// byte offsets for ASCII input.
type Lexer interface {
	HasDriveLetterPrefix(p string) bool
	FindRootNameEnd(p string) int
	RootName(p string) string
	FindRelativePath(p string) int
	RelativePath(p string) string
	RootDirectory(p string) string
	RootPath(p string) string
	ParentPath(p string) string
	FindFilename(p string) int
	Filename(p string) string
	Split(p string) (parent, child string)
	FindExtension(name string) int
	FindStreamStart(name string) int
	Stem(p string) string
	Extension(p string) string
}

// TestLexerOption configures TestLexer behavior via functional options.
type TestLexerOption func(*testLexerOpts)

type testLexerOpts struct {
	cases []Case
}

// WithCases adds decompositions to check on top of [Cases].
// Their paths are also used for the property checks.
func WithCases(cases ...Case) TestLexerOption {
	return func(opts *testLexerOpts) {
		opts.cases = append(opts.cases, cases...)
	}
}

// TestLexer runs the conformance suite against lx.
//
// Typical usage:
//
//	func TestGrammar(t *testing.T) {
//	    lextest.TestLexer(t, myLexer{})
//	}
func TestLexer(t *testing.T, lx Lexer, opts ...TestLexerOption) {
	t.Helper()

	var o testLexerOpts
	for _, opt := range opts {
		opt(&o)
	}
	cases := append(append([]Case(nil), Cases...), o.cases...)

	t.Run("DriveLetters", func(t *testing.T) {
		testDriveLetters(t, lx)
	})
	t.Run("Cases", func(t *testing.T) {
		testCases(t, lx, cases)
	})
	t.Run("Extensions", func(t *testing.T) {
		testFindExtension(t, lx)
	})
	t.Run("Streams", func(t *testing.T) {
		testFindStreamStart(t, lx)
	})
	t.Run("Properties", func(t *testing.T) {
		paths := make([]string, 0, len(cases)+len(extraPaths))
		for _, c := range cases {
			paths = append(paths, c.Path)
		}
		paths = append(paths, extraPaths...)
		for _, p := range paths {
			testProperties(t, lx, p)
		}
	})
}

func testDriveLetters(t *testing.T, lx Lexer) {
	tests := []struct {
		path string
		want bool
	}{
		{"c:", true},
		{"C:", true},
		{"z:", true},
		{"Z:", true},
		{`C:\`, true},
		{"cd:", false},
		{"1:", false},
		{"@:", false},
		{"[:", false},
		{"`:", false},
		{"{:", false},
		{":", false},
		{"c", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := lx.HasDriveLetterPrefix(tt.path); got != tt.want {
			t.Errorf("HasDriveLetterPrefix(%q) = %v, want %v",
				tt.path, got, tt.want)
		}
	}
}

func testCases(t *testing.T, lx Lexer, cases []Case) {
	for _, c := range cases {
		p := c.Path
		check(t, "RootName", p, lx.RootName(p), c.RootName)
		check(t, "RootDirectory", p, lx.RootDirectory(p), c.RootDirectory)
		check(t, "RootPath", p, lx.RootPath(p),
			c.RootName+c.RootDirectory)
		check(t, "RelativePath", p, lx.RelativePath(p), c.RelativePath)
		check(t, "ParentPath", p, lx.ParentPath(p), c.ParentPath)
		check(t, "Filename", p, lx.Filename(p), c.Filename)
		check(t, "Stem", p, lx.Stem(p), c.Stem)
		check(t, "Extension", p, lx.Extension(p), c.Extension)
	}
}

func testFindExtension(t *testing.T, lx Lexer) {
	tests := []struct {
		name string
		want int
	}{
		{"", 0},
		{".", 1},
		{"x", 1},
		{"..", 2},
		{"x.", 1},
		{"...", 2},
		{".x", 2},
		{"a.b", 1},
		{"a.b.c", 3},
		{".a.b", 2},
		{"a..", 2},
		{"noext", 5},
	}
	for _, tt := range tests {
		if got := lx.FindExtension(tt.name); got != tt.want {
			t.Errorf("FindExtension(%q) = %d, want %d",
				tt.name, got, tt.want)
		}
	}
}

func testFindStreamStart(t *testing.T, lx Lexer) {
	tests := []struct {
		name string
		want int
	}{
		{"", 0},
		{":", 0},
		{"abc", 3},
		{"a:b:c", 1},
		{"a.txt:stream:$DATA", 5},
		{":stream", 0},
		{"name:", 4},
	}
	for _, tt := range tests {
		if got := lx.FindStreamStart(tt.name); got != tt.want {
			t.Errorf("FindStreamStart(%q) = %d, want %d",
				tt.name, got, tt.want)
		}
	}
}

// extraPaths exercise the properties on inputs without a fixed
// expectation.
var extraPaths = []string{
	`a`, `/`, `\`, `\\`, `\\\`, `///x//y//`, `C:\\\`, `C:/a/b/c.d/`,
	`\\?`, `\\.\`, `\??\`, `\\?\x`, `\?\x`, `\\x\`, `\\x\\y`,
	`x:y:z`, `a:b\c:d`, `a\c:x`, `\\?\c:`, `.\.\.`, `..\..`,
	`a/b.c/d`, `a.b/`, `C:..`, `C:.x`,
}

const slashes = `\/`

func testProperties(t *testing.T, lx Lexer, p string) {
	root, dir, rel := lx.RootName(p), lx.RootDirectory(p), lx.RelativePath(p)
	if got := root + dir + rel; got != p {
		t.Errorf("RootName+RootDirectory+RelativePath(%q) = %q, want %q",
			p, got, p)
	}
	if strings.Trim(dir, slashes) != "" {
		t.Errorf("RootDirectory(%q) = %q, want only separators", p, dir)
	}
	if strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		t.Errorf("RelativePath(%q) = %q, starts with a separator", p, rel)
	}
	if got, want := lx.FindRootNameEnd(p), len(root); got != want {
		t.Errorf("FindRootNameEnd(%q) = %d, want %d", p, got, want)
	}
	if got, want := lx.FindRelativePath(p), len(p)-len(rel); got != want {
		t.Errorf("FindRelativePath(%q) = %d, want %d", p, got, want)
	}
	if got, want := lx.RootPath(p), root+dir; got != want {
		t.Errorf("RootPath(%q) = %q, want %q", p, got, want)
	}

	parent, child := lx.Split(p)
	if parent+child != p {
		t.Errorf("Split(%q) = (%q, %q), does not rebuild the path",
			p, parent, child)
	}
	if got := lx.ParentPath(p); got != parent {
		t.Errorf("ParentPath(%q) = %q, want %q", p, got, parent)
	}
	if !strings.HasPrefix(parent, root+dir) {
		t.Errorf("ParentPath(%q) = %q, drops the root path", p, parent)
	}
	name := lx.Filename(p)
	if got := strings.TrimLeft(child, slashes); got != name {
		t.Errorf("Split(%q) child = %q, want separators then %q",
			p, child, name)
	}
	if got, want := lx.FindFilename(p), len(p)-len(name); got != want {
		t.Errorf("FindFilename(%q) = %d, want %d", p, got, want)
	}
	if strings.ContainsAny(name, slashes) {
		t.Errorf("Filename(%q) = %q, contains a separator", p, name)
	}

	stream := strings.IndexByte(name, ':')
	base := name
	if stream >= 0 {
		base = name[:stream]
	}
	stem, ext := lx.Stem(p), lx.Extension(p)
	if stem+ext != base {
		t.Errorf("Stem+Extension(%q) = %q+%q, want %q", p, stem, ext, base)
	}
	if ext != "" && ext[0] != '.' {
		t.Errorf("Extension(%q) = %q, want a leading dot", p, ext)
	}

	if !lx.HasDriveLetterPrefix(rel) {
		if got := lx.RelativePath(rel); got != rel {
			t.Errorf("RelativePath(RelativePath(%q)) = %q, want %q",
				p, got, rel)
		}
	}
	if !lx.HasDriveLetterPrefix(name) {
		if got := lx.Filename(name); got != name {
			t.Errorf("Filename(Filename(%q)) = %q, want %q", p, got, name)
		}
	}
}

func check(t *testing.T, fn, path, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s(%q) = %q, want %q", fn, path, got, want)
	}
}
