package lextest

// A Case is a path and its expected decomposition.
type Case struct {
	Path string

	RootName      string
	RootDirectory string
	RelativePath  string
	ParentPath    string
	Filename      string
	Stem          string
	Extension     string
}

// Cases are the decompositions every Lexer must reproduce.
//
// They follow the MSVC implementation of std::filesystem::path.
var Cases = []Case{
	// Drive letters.
	{
		Path:     `C:\foo\bar`,
		RootName: `C:`, RootDirectory: `\`, RelativePath: `foo\bar`,
		ParentPath: `C:\foo`, Filename: `bar`, Stem: `bar`,
	},
	{
		Path:     `c:/x.y`,
		RootName: `c:`, RootDirectory: `/`, RelativePath: `x.y`,
		ParentPath: `c:/`, Filename: `x.y`, Stem: `x`, Extension: `.y`,
	},
	{
		Path: `C:`, RootName: `C:`, ParentPath: `C:`,
	},
	{
		Path:     `C:foo`,
		RootName: `C:`, RelativePath: `foo`,
		ParentPath: `C:`, Filename: `foo`, Stem: `foo`,
	},
	{
		Path:     `C:\`,
		RootName: `C:`, RootDirectory: `\`, ParentPath: `C:\`,
	},
	{
		Path:         `1:foo`,
		RelativePath: `1:foo`, Filename: `1:foo`, Stem: `1`,
	},

	// UNC servers.
	{
		Path:     `\\server\share\x`,
		RootName: `\\server`, RootDirectory: `\`, RelativePath: `share\x`,
		ParentPath: `\\server\share`, Filename: `x`, Stem: `x`,
	},
	{
		Path:     `//server/share`,
		RootName: `//server`, RootDirectory: `/`, RelativePath: `share`,
		ParentPath: `//server/`, Filename: `share`, Stem: `share`,
	},
	{
		Path: `\\server`, RootName: `\\server`, ParentPath: `\\server`,
	},
	{
		Path:          `\\\x`,
		RootDirectory: `\\\`, RelativePath: `x`,
		ParentPath: `\\\`, Filename: `x`, Stem: `x`,
	},

	// Device namespaces.
	{
		Path:     `\\?\C:\x`,
		RootName: `\\?`, RootDirectory: `\`, RelativePath: `C:\x`,
		ParentPath: `\\?\C:`, Filename: `x`, Stem: `x`,
	},
	{
		Path:     `\\.\pipe\name`,
		RootName: `\\.`, RootDirectory: `\`, RelativePath: `pipe\name`,
		ParentPath: `\\.\pipe`, Filename: `name`, Stem: `name`,
	},
	{
		Path:     `\??\C:\x`,
		RootName: `\??`, RootDirectory: `\`, RelativePath: `C:\x`,
		ParentPath: `\??\C:`, Filename: `x`, Stem: `x`,
	},
	{
		Path:     `\\?\UNC\server\share`,
		RootName: `\\?`, RootDirectory: `\`,
		RelativePath: `UNC\server\share`,
		ParentPath:   `\\?\UNC\server`, Filename: `share`, Stem: `share`,
	},
	{
		Path:     `\\?\`,
		RootName: `\\?`, RootDirectory: `\`, ParentPath: `\\?\`,
	},
	{
		// A doubled slash after \\? makes it a server name instead.
		Path:     `\\?\\x`,
		RootName: `\\?`, RootDirectory: `\\`, RelativePath: `x`,
		ParentPath: `\\?\\`, Filename: `x`, Stem: `x`,
	},

	// Root-relative and relative paths.
	{
		Path:          `\foo`,
		RootDirectory: `\`, RelativePath: `foo`,
		ParentPath: `\`, Filename: `foo`, Stem: `foo`,
	},
	{
		Path:          `/cat/dog/\//\`,
		RootDirectory: `/`, RelativePath: `cat/dog/\//\`,
		ParentPath: `/cat/dog`,
	},
	{
		Path:          `/cat/dog/`,
		RootDirectory: `/`, RelativePath: `cat/dog/`,
		ParentPath: `/cat/dog`,
	},
	{
		Path:         `foo\bar\`,
		RelativePath: `foo\bar\`, ParentPath: `foo\bar`,
	},
	{
		Path: `//`, RootDirectory: `//`, ParentPath: `//`,
	},
	{
		Path: ``,
	},

	// Stems and extensions.
	{
		Path:         `archive.tar.gz`,
		RelativePath: `archive.tar.gz`, Filename: `archive.tar.gz`,
		Stem: `archive.tar`, Extension: `.gz`,
	},
	{
		Path:         `..`,
		RelativePath: `..`, Filename: `..`, Stem: `..`,
	},
	{
		Path:         `.`,
		RelativePath: `.`, Filename: `.`, Stem: `.`,
	},
	{
		Path:         `...`,
		RelativePath: `...`, Filename: `...`, Stem: `..`, Extension: `.`,
	},
	{
		Path:         `.bashrc`,
		RelativePath: `.bashrc`, Filename: `.bashrc`, Stem: `.bashrc`,
	},
	{
		Path:         `.x.y`,
		RelativePath: `.x.y`, Filename: `.x.y`, Stem: `.x`, Extension: `.y`,
	},
	{
		Path:         `x.`,
		RelativePath: `x.`, Filename: `x.`, Stem: `x`, Extension: `.`,
	},
	{
		Path:         `dir\..`,
		RelativePath: `dir\..`, ParentPath: `dir`,
		Filename: `..`, Stem: `..`,
	},

	// Alternate data streams.
	{
		Path:         `name:stream`,
		RelativePath: `name:stream`, Filename: `name:stream`, Stem: `name`,
	},
	{
		Path:         `a.txt:stream:$DATA`,
		RelativePath: `a.txt:stream:$DATA`, Filename: `a.txt:stream:$DATA`,
		Stem: `a`, Extension: `.txt`,
	},
	{
		Path:         `dir/:stream`,
		RelativePath: `dir/:stream`, ParentPath: `dir`,
		Filename: `:stream`,
	},
	{
		Path:     `C:\dir\file.tar.gz:zone.id`,
		RootName: `C:`, RootDirectory: `\`,
		RelativePath: `dir\file.tar.gz:zone.id`,
		ParentPath:   `C:\dir`, Filename: `file.tar.gz:zone.id`,
		Stem: `file.tar`, Extension: `.gz`,
	},
}
