package snapshot

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// snapshotLexer tokenizes snapshot files. Line ends are significant: each
// record occupies one line.
var snapshotLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// 0x-prefixed addresses and values
	{Name: "Hex", Pattern: `0[xX][0-9a-fA-F]+`},
	// Bare 32-bit words as printed by OpenOCD's mdw
	{Name: "Word", Pattern: `[0-9a-fA-F]{8}\b`},

	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[:\[\]]`},
})

// file is the parse tree of a snapshot.
type file struct {
	Entries []*entry `@@*`
}

// entry is one line: blank, target, memory words or a banked slot.
type entry struct {
	Pos lexer.Position

	Target *string    `(   "target" @String`
	Words  *wordsLine `  | @@`
	Bank   *bankLine  `  | @@ )? EOL`
}

// wordsLine is "0x40000c00: 00000000 00004303 ...".
type wordsLine struct {
	Addr  string   `@Hex ":"`
	Words []string `@Word*`
}

// bankLine is "bank 0x40000c02[0x03] 0x40000c02: 0x00004303".
type bankLine struct {
	Select string       `"bank" @Hex`
	Index  string       `"[" @Hex "]"`
	Data   []*dataValue `@@+`
}

type dataValue struct {
	Addr  string `@Hex ":"`
	Value string `@Hex`
}

var parser = participle.MustBuild[file](
	participle.Lexer(snapshotLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)
