// Package markdown turns knowledge-base articles into plain terminal text.
//
// Articles are parsed once with goldmark and walked directly: block nodes
// open and close lines, inline text accumulates into the current block and
// is word-wrapped when the block closes.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return parserInstance
}

func parse(source []byte) ast.Node {
	return parser().Parser().Parse(text.NewReader(source))
}

// Title returns the text of the first heading in source, or "" when the
// document has none.
func Title(source []byte) string {
	doc := parse(source)
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(inlineText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// Options controls Render output.
type Options struct {
	Width   int
	Heading *lipgloss.Style
	Code    *lipgloss.Style
}

// Render converts source into wrapped terminal lines.
func Render(source string, opts Options) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	src := []byte(source)
	r := &renderer{source: src, opts: opts}
	for n := parse(src).FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, "")
	}
	return strings.TrimRight(strings.Join(r.lines, "\n"), "\n")
}

type renderer struct {
	source []byte
	opts   Options
	lines  []string
}

func (r *renderer) emit(prefix, body string) {
	width := r.opts.Width - len([]rune(prefix))
	if width > 0 {
		body = wordwrap.String(body, width)
	}
	indent := strings.Repeat(" ", len([]rune(prefix)))
	for i, line := range strings.Split(body, "\n") {
		if i == 0 {
			r.lines = append(r.lines, prefix+line)
			continue
		}
		r.lines = append(r.lines, indent+line)
	}
}

func (r *renderer) blank() {
	if len(r.lines) > 0 && r.lines[len(r.lines)-1] != "" {
		r.lines = append(r.lines, "")
	}
}

func (r *renderer) block(n ast.Node, prefix string) {
	switch node := n.(type) {
	case *ast.Heading:
		heading := inlineText(node, r.source)
		if r.opts.Heading != nil {
			heading = r.opts.Heading.Render(heading)
		}
		r.blank()
		r.lines = append(r.lines, prefix+heading)
		r.blank()
	case *ast.Paragraph, *ast.TextBlock:
		r.emit(prefix, inlineText(node, r.source))
		if _, ok := node.(*ast.Paragraph); ok {
			r.blank()
		}
	case *ast.List:
		index := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			bullet := "• "
			if node.IsOrdered() {
				bullet = strconv.Itoa(index) + ". "
				index++
			}
			first := true
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				p := prefix + strings.Repeat(" ", len([]rune(bullet)))
				if first {
					p = prefix + bullet
					first = false
				}
				r.block(child, p)
			}
		}
		r.blank()
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(r.source)), "\n")
			if r.opts.Code != nil {
				line = r.opts.Code.Render(line)
			}
			r.lines = append(r.lines, prefix+"    "+line)
		}
		r.blank()
	case *ast.Blockquote:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			r.block(child, prefix+"│ ")
		}
	case *ast.ThematicBreak:
		r.lines = append(r.lines, prefix+"────")
		r.blank()
	default:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			r.block(child, prefix)
		}
	}
}

// inlineText flattens the inline children of n. Soft line breaks become
// spaces so hard-wrapped source reflows at any width.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.HardLineBreak() {
				b.WriteByte('\n')
			} else if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
