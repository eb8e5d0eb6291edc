package domain

import (
	"path"
	"regexp"
	"strings"

	m "github.com/mouse-blink/stamp/internal/model"
)

var basenameFormats = map[string]m.Format{
	"Rakefile": m.FormatRuby,
	"Gemfile":  m.FormatRuby,
}

// scriptDirs hold extensionless ruby scripts.
var scriptDirs = map[string]bool{"bin": true, "init": true}

var extFormats = map[string]m.Format{
	".gemspec": m.FormatRuby,
	".rb":      m.FormatRuby,
	".sh":      m.FormatRuby,
	".py":      m.FormatRuby,
	".java":    m.FormatJava,
	".c":       m.FormatJava,
	".h":       m.FormatJava,
	".go":      m.FormatJava,
	".js":      m.FormatJava,
	".ts":      m.FormatJava,
	".scala":   m.FormatJava,
	".css":     m.FormatJava,
	".xml":     m.FormatMarkup,
	".html":    m.FormatMarkup,
	".xsd":     m.FormatMarkup,
	".xsl":     m.FormatMarkup,
}

// languages maps interpreter and editor mode names to a format.
var languages = map[string]m.Format{
	"ruby":         m.FormatRuby,
	"jruby":        m.FormatRuby,
	"sh":           m.FormatRuby,
	"bash":         m.FormatRuby,
	"zsh":          m.FormatRuby,
	"shell-script": m.FormatRuby,
	"python":       m.FormatRuby,
	"perl":         m.FormatRuby,
	"java":         m.FormatJava,
	"c":            m.FormatJava,
	"c++":          m.FormatJava,
	"go":           m.FormatJava,
	"javascript":   m.FormatJava,
	"js":           m.FormatJava,
	"typescript":   m.FormatJava,
	"scala":        m.FormatJava,
	"css":          m.FormatJava,
	"xml":          m.FormatMarkup,
	"nxml":         m.FormatMarkup,
	"html":         m.FormatMarkup,
	"sgml":         m.FormatMarkup,
	"text":         m.FormatText,
	"fundamental":  m.FormatText,
}

var (
	emacsMode   = regexp.MustCompile(`-\*-\s*(?:mode:\s*)?([\w+-]+)\s*[;-]`)
	vimMode     = regexp.MustCompile(`\bvim?:.*\b(?:ft|filetype)=([\w+-]+)`)
	magicCoding = regexp.MustCompile(`^\s*#\s*(?:-\*-.*|vim?:.*)?\b(?:file)?(?:en)?coding[:=]\s*[\w.-]+`)
	commentLine = regexp.MustCompile(`^\s*(#|//|/\*|\*|<!--|-->|;)`)
	versionTail = regexp.MustCompile(`[0-9.]+$`)
)

// FormatFor derives the default format of path from its basename or
// extension.
func FormatFor(p m.Path) m.Format {
	slashed := strings.ReplaceAll(string(p), "\\", "/")
	base := path.Base(slashed)

	if f, ok := basenameFormats[base]; ok {
		return f
	}

	if f, ok := extFormats[path.Ext(base)]; ok {
		return f
	}

	if scriptDirs[path.Base(path.Dir(slashed))] {
		return m.FormatRuby
	}

	return m.FormatText
}

// ScanPrologue returns the format of lines and the index of the first line
// after any interpreter, declaration or mode-hint prologue. A mode hint or
// magic coding comment is only recognised on the first line, or the second
// after a shebang or XML declaration.
func ScanPrologue(lines []string, def m.Format) (m.Format, int) {
	format, start := def, 0

	if len(lines) == 0 {
		return format, start
	}

	switch first := lines[0]; {
	case strings.HasPrefix(first, "#!"):
		start = 1
		if f, ok := languages[interpreter(first)]; ok {
			format = f
		}
	case strings.HasPrefix(first, "<?xml"):
		start = 1
		format = m.FormatMarkup
	}

	if start >= len(lines) {
		return format, start
	}

	line := lines[start]
	if !commentLine.MatchString(line) || strings.Contains(line, "Copyright") {
		return format, start
	}

	if f, ok := modeHint(line); ok {
		return f, start + 1
	}

	if magicCoding.MatchString(line) {
		start++
	}

	return format, start
}

// interpreter extracts the interpreter name from a shebang line, looking
// through env and dropping version suffixes.
func interpreter(shebang string) string {
	fields := strings.Fields(strings.TrimPrefix(shebang, "#!"))
	if len(fields) == 0 {
		return ""
	}

	name := path.Base(fields[0])
	if name == "env" {
		name = ""

		for _, f := range fields[1:] {
			if !strings.HasPrefix(f, "-") && !strings.Contains(f, "=") {
				name = path.Base(f)
				break
			}
		}
	}

	return versionTail.ReplaceAllString(name, "")
}

func modeHint(line string) (m.Format, bool) {
	for _, re := range []*regexp.Regexp{emacsMode, vimMode} {
		if match := re.FindStringSubmatch(line); match != nil {
			if f, ok := languages[strings.ToLower(match[1])]; ok {
				return f, true
			}
		}
	}

	return m.FormatText, false
}
