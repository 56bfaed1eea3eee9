// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dictionary

// Known returns a Source holding Go keywords, predeclared identifiers and
// technical words commonly used in Go identifiers and documentation that
// are not found in general purpose word lists.
func Known() Source {
	return List("known words", knownWords...)
}

var knownWords = []string{
	"golang", "gopher", "gophers",

	// Keywords
	"break", "case", "chan", "const", "continue", "default", "defer",
	"else", "fallthrough", "for", "func", "funcs", "go", "goto", "if",
	"import", "interface", "map", "package", "range", "return", "select",
	"struct", "structs", "switch", "type", "var", "vars",

	// Predeclared identifiers
	"any", "append", "cap", "clear", "close", "complex", "copy", "delete",
	"imag", "iota", "len", "make", "max", "min", "new", "nil", "panic",
	"print", "println", "real", "recover",
	"bool", "byte", "comparable", "error", "rune", "runes", "string",
	"int", "uint", "uintptr", "float", "complex", "cgo",
	"goroutine", "goroutines",

	// Common abbreviations
	"arg", "args", "buf", "bufs", "cfg", "cmd", "ctx", "dir", "dirs",
	"dst", "env", "err", "errs", "exe", "fd", "fmt", "fn", "id", "ids",
	"idx", "impl", "init", "io", "ioutil", "msg", "msgs", "num", "os",
	"pkg", "pkgs", "ptr", "req", "resp", "src", "str", "strs", "sync",
	"tmp", "val", "vals",

	// Commonly used words
	"allocator", "allocators", "ascii", "async", "asm", "backquote",
	"boolean", "booleans", "charset", "codec", "codecs", "codepoint",
	"codepoints", "config", "configs", "deduplicate", "endian",
	"endianness", "filesystem", "filesystems", "glob", "globbing",
	"hostname", "hostnames", "http", "https", "html", "json", "lexer",
	"libc", "localhost", "lossy", "mutex", "mutexes", "namespace",
	"namespaces", "parsers", "rpc", "stderr", "stdin", "stdout",
	"subcommand", "subcommands", "substring", "substrings", "symlink",
	"symlinks", "syscall", "syscalls", "tokenize", "tokenizer", "toml",
	"toolchain", "unmarshal", "url", "urls", "utf", "vendored", "xml",
	"yaml",

	// Units
	"KiB", "MiB", "GiB", "TiB", "ns", "µs", "ms",

	// Architectures and operating systems, as split into words.
	"aix", "amd", "arm", "darwin", "freebsd", "illumos", "ios", "js",
	"le", "linux", "mips", "mipsle", "netbsd", "openbsd", "plan", "ppc",
	"riscv", "solaris", "wasip", "wasm", "windows",

	// Common hosters
	"bitbucket", "github", "gitlab", "sourcehut",
}
