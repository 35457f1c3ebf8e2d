package pathlex_test

import (
	"strings"
	"testing"

	"lesiw.io/pathlex"
	"lesiw.io/pathlex/lextest"
)

// units converts ASCII s to code units of type C one byte at a time.
func units[C pathlex.Char](s string) []C {
	p := make([]C, len(s))
	for i := range len(s) {
		p[i] = C(s[i])
	}
	return p
}

func str[C pathlex.Char](p []C) string {
	var b strings.Builder
	for _, c := range p {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// lexer adapts the generic grammar at width C to lextest.Lexer.
type lexer[C pathlex.Char] struct{}

func (lexer[C]) HasDriveLetterPrefix(p string) bool {
	return pathlex.HasDriveLetterPrefix(units[C](p))
}

func (lexer[C]) FindRootNameEnd(p string) int {
	return pathlex.FindRootNameEnd(units[C](p))
}

func (lexer[C]) RootName(p string) string {
	return str(pathlex.RootName(units[C](p)))
}

func (lexer[C]) FindRelativePath(p string) int {
	return pathlex.FindRelativePath(units[C](p))
}

func (lexer[C]) RelativePath(p string) string {
	return str(pathlex.RelativePath(units[C](p)))
}

func (lexer[C]) RootDirectory(p string) string {
	return str(pathlex.RootDirectory(units[C](p)))
}

func (lexer[C]) RootPath(p string) string {
	return str(pathlex.RootPath(units[C](p)))
}

func (lexer[C]) ParentPath(p string) string {
	return str(pathlex.ParentPath(units[C](p)))
}

func (lexer[C]) FindFilename(p string) int {
	return pathlex.FindFilename(units[C](p))
}

func (lexer[C]) Filename(p string) string {
	return str(pathlex.Filename(units[C](p)))
}

func (lexer[C]) Split(p string) (parent, child string) {
	pp, cp := pathlex.Split(units[C](p))
	return str(pp), str(cp)
}

func (lexer[C]) FindExtension(name string) int {
	return pathlex.FindExtension(units[C](name))
}

func (lexer[C]) FindStreamStart(name string) int {
	return pathlex.FindStreamStart(units[C](name))
}

func (lexer[C]) Stem(p string) string {
	return str(pathlex.Stem(units[C](p)))
}

func (lexer[C]) Extension(p string) string {
	return str(pathlex.Extension(units[C](p)))
}

func TestLexer(t *testing.T) {
	t.Run("Narrow", func(t *testing.T) {
		lextest.TestLexer(t, lexer[byte]{})
	})
	t.Run("Wide", func(t *testing.T) {
		lextest.TestLexer(t, lexer[uint16]{})
	})
}

func isLetter(c int) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func TestDrivePrefixBytes(t *testing.T) {
	for c := range 1 << 8 {
		p := []byte{byte(c), ':'}
		if got, want := pathlex.IsDrivePrefix(p), isLetter(c); got != want {
			t.Errorf("IsDrivePrefix(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestDrivePrefixUnits(t *testing.T) {
	for c := range 1 << 16 {
		p := []uint16{uint16(c), ':'}
		if got, want := pathlex.IsDrivePrefix(p), isLetter(c); got != want {
			t.Errorf("IsDrivePrefix(%#04x, ':') = %v, want %v",
				c, got, want)
		}
	}
}

func TestNamedTypes(t *testing.T) {
	type unit uint16
	type path []unit

	p := path(units[unit](`C:\dir\name.ext`))
	var got path = pathlex.Stem(p)
	if s := str(got); s != "name" {
		t.Errorf("Stem(%q) = %q, want %q", str(p), s, "name")
	}
}

func TestCaseFolding(t *testing.T) {
	tests := []struct {
		in, lower, upper byte
	}{
		{'a', 'a', 'A'},
		{'A', 'a', 'A'},
		{'z', 'z', 'Z'},
		{'Z', 'z', 'Z'},
		{'m', 'm', 'M'},
	}
	for _, tt := range tests {
		if got := pathlex.ASCIILower(tt.in); got != tt.lower {
			t.Errorf("ASCIILower(%q) = %q, want %q", tt.in, got, tt.lower)
		}
		if got := pathlex.ASCIIUpper(tt.in); got != tt.upper {
			t.Errorf("ASCIIUpper(%q) = %q, want %q", tt.in, got, tt.upper)
		}
		w := uint16(tt.in)
		if got := pathlex.ASCIILower(w); got != uint16(tt.lower) {
			t.Errorf("ASCIILower(%#04x) = %#04x, want %#04x",
				w, got, tt.lower)
		}
		if got := pathlex.ASCIIUpper(w); got != uint16(tt.upper) {
			t.Errorf("ASCIIUpper(%#04x) = %#04x, want %#04x",
				w, got, tt.upper)
		}
	}
}

func FuzzGrammar(f *testing.F) {
	for _, c := range lextest.Cases {
		f.Add(c.Path)
	}
	f.Fuzz(func(t *testing.T, s string) {
		n := []byte(s)
		w := units[uint16](s)

		if got, want := pathlex.FindRootNameEnd(w),
			pathlex.FindRootNameEnd(n); got != want {
			t.Fatalf("FindRootNameEnd(%q): wide %d, narrow %d", s, got, want)
		}
		if got, want := pathlex.FindRelativePath(w),
			pathlex.FindRelativePath(n); got != want {
			t.Fatalf("FindRelativePath(%q): wide %d, narrow %d",
				s, got, want)
		}
		if got, want := pathlex.FindFilename(w),
			pathlex.FindFilename(n); got != want {
			t.Fatalf("FindFilename(%q): wide %d, narrow %d", s, got, want)
		}
		if got, want := len(pathlex.ParentPath(w)),
			len(pathlex.ParentPath(n)); got != want {
			t.Fatalf("ParentPath(%q): wide len %d, narrow len %d",
				s, got, want)
		}
		if got, want := str(pathlex.Stem(w)),
			string(pathlex.Stem(n)); got != want {
			t.Fatalf("Stem(%q): wide %q, narrow %q", s, got, want)
		}

		root := pathlex.FindRootNameEnd(n)
		rel := pathlex.FindRelativePath(n)
		name := pathlex.FindFilename(n)
		parent := len(pathlex.ParentPath(n))
		if !(0 <= root && root <= rel && rel <= name && name <= len(n)) {
			t.Fatalf("%q: root %d, relative %d, filename %d out of order",
				s, root, rel, name)
		}
		if parent < rel || parent > name {
			t.Fatalf("%q: parent end %d outside [%d, %d]",
				s, parent, rel, name)
		}
		for _, c := range n[root:rel] {
			if !pathlex.IsSlash(c) {
				t.Fatalf("RootDirectory(%q) = %q, want separators",
					s, n[root:rel])
			}
		}
		for _, c := range n[parent:name] {
			if !pathlex.IsSlash(c) {
				t.Fatalf("%q: %q between parent and filename", s,
					n[parent:name])
			}
		}

		base := pathlex.Filename(n)
		base = base[:pathlex.FindStreamStart(base)]
		stem, ext := pathlex.Stem(n), pathlex.Extension(n)
		if string(stem)+string(ext) != string(base) {
			t.Fatalf("Stem+Extension(%q) = %q+%q, want %q",
				s, stem, ext, base)
		}
	})
}

func BenchmarkFindRootNameEnd(b *testing.B) {
	p := []byte(`\\server\share\dir\file.txt`)
	b.ReportAllocs()
	for b.Loop() {
		_ = pathlex.FindRootNameEnd(p)
	}
}
