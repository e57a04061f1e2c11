// Package glyph holds the list markers used when printing buckets.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

type Mark int

const (
	Log Mark = iota
	TodoOpen
	TodoDone
	Duplicate
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{
			Key:     "-",
			Symbol:  "⁃",
			Meaning: "log entry",
		}, {
			Key:     "o",
			Symbol:  "○",
			Meaning: "todo open",
		}, {
			Key:     "x",
			Symbol:  "✘",
			Meaning: "todo done",
		}, {
			Key:     "=",
			Symbol:  "≡",
			Meaning: "duplicate",
		},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}
