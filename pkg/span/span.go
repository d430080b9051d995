// Package span computes the exact byte range a function occupies in source text.
package span

import (
	"fmt"
	"strings"

	"github.com/lerenn/solvac/pkg/matcher"
)

const (
	docBlockOpen  = "/**"
	docBlockClose = "*/"
)

// Span is the removable range [Start, End) of one function.
type Span struct {
	// Start is the first removed byte: the documentation block or the
	// beginning of the line when only indentation precedes the function.
	Start int
	// End is one past the last removed byte.
	End int
}

// Cut returns content without the span.
func (s Span) Cut(content string) string {
	return content[:s.Start] + content[s.End:]
}

// Locate finds the first declaration of name in content and returns its span.
//
// The body ends at the brace closing the first opening brace found after the
// parameter list, or at a semicolon when one comes first. A NatSpec block
// directly above the declaration is part of the span. Whole lines are removed:
// the span grows to the start of its line and past its line terminator, unless
// other code shares that line. Code in front of the span keeps its line
// terminator so the following line is never joined to it.
func Locate(content, name string) (Span, error) {
	loc := matcher.DeclarationPattern(name).FindStringIndex(content)
	if loc == nil {
		return Span{}, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}

	end, err := bodyEnd(content, loc[1])
	if err != nil {
		return Span{}, fmt.Errorf("%w: %s", err, name)
	}

	start, aligned := lineStart(content, docBlockStart(content, loc[0]))
	if aligned {
		end = lineEnd(content, end)
	}

	return Span{
		Start: start,
		End:   end,
	}, nil
}

// bodyEnd returns the offset right after the function body or prototype,
// scanning from the given offset.
func bodyEnd(content string, from int) (int, error) {
	idx := strings.IndexAny(content[from:], "{;")
	if idx < 0 {
		return 0, ErrUnterminatedBody
	}
	pos := from + idx
	if content[pos] == ';' {
		return pos + 1, nil
	}

	depth := 1
	for pos++; pos < len(content); pos++ {
		switch content[pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return pos + 1, nil
			}
		}
	}
	return 0, ErrUnterminatedBody
}

// docBlockStart returns the offset of the documentation block ending right before
// declStart, or declStart when there is none.
func docBlockStart(content string, declStart int) int {
	open := strings.LastIndex(content[:declStart], docBlockOpen)
	if open < 0 {
		return declStart
	}

	between := strings.TrimSpace(content[open:declStart])
	if !strings.HasPrefix(between, docBlockOpen) || !strings.HasSuffix(between, docBlockClose) {
		return declStart
	}
	// The block must close only once, at its very end.
	if strings.Index(between, docBlockClose) != len(between)-len(docBlockClose) {
		return declStart
	}
	return open
}

// lineStart moves start back to the beginning of its line when only spaces
// and tabs precede it, and reports whether it did.
func lineStart(content string, start int) (int, bool) {
	bol := strings.LastIndexByte(content[:start], '\n') + 1
	if strings.Trim(content[bol:start], " \t") != "" {
		return start, false
	}
	return bol, true
}

// lineEnd moves end past trailing spaces, tabs and one line terminator when
// nothing else follows on the line.
func lineEnd(content string, end int) int {
	pos := end
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t') {
		pos++
	}

	switch {
	case pos == len(content):
		return pos
	case content[pos] == '\n':
		return pos + 1
	case strings.HasPrefix(content[pos:], "\r\n"):
		return pos + 2
	default:
		return end
	}
}
