// Package model defines the data structures shared by the stamp workflows.
package model

// Path represents a file system path, relative to the working directory
// unless stated otherwise.
type Path string

// Format identifies the comment family of a source file. It decides how the
// prologue is scanned, how the copyright marker is located and which header
// template is rendered.
type Format int

const (
	// FormatText is plain text with no comment syntax.
	FormatText Format = iota
	// FormatRuby covers hash-commented files (Ruby, shell, Python, ...).
	FormatRuby
	// FormatJava covers C-style block commented files (Java, C, Go, ...).
	FormatJava
	// FormatMarkup covers XML-like files.
	FormatMarkup
)

// String returns the human readable format name.
func (f Format) String() string {
	switch f {
	case FormatRuby:
		return "ruby-like"
	case FormatJava:
		return "java-like"
	case FormatMarkup:
		return "markup"
	default:
		return "plain-text"
	}
}

// Key returns the short name used to select the header template.
func (f Format) Key() string {
	switch f {
	case FormatRuby:
		return "rb"
	case FormatJava:
		return "java"
	case FormatMarkup:
		return "xml"
	default:
		return "txt"
	}
}

// Source is a file selected for processing together with what was learned
// from its prologue.
type Source struct {
	Path   Path
	Format Format
	// Prologue is the index of the first line after any interpreter,
	// declaration or mode hint lines.
	Prologue int
}
