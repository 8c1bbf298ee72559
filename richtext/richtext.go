// Package richtext parses the index-tag convention used to embed markup
// placeholders in translated strings, e.g.
//
//	"Read the <0>docs</0> or <1/>"
//
// Translators move and reorder the numbered tags without seeing the markup
// behind them; the consuming UI layer decides what each index renders as.
// The package works on plain translated strings and is fully decoupled from
// the Translator: translate first, then parse or render.
package richtext

import (
	"fmt"
	"strings"
)

// Node is one piece of a parsed rich-text string: either plain text
// (Index < 0) or a numbered tag wrapping child nodes.
type Node struct {
	Index    int    // tag index, or -1 for plain text
	Text     string // plain text content when Index < 0
	Children []Node // wrapped content for tag nodes
}

// IsText reports whether the node is plain text.
func (n Node) IsText() bool {
	return n.Index < 0
}

// Renderer produces the final rendering of one indexed tag given its
// already-rendered children.
type Renderer func(children string) string

// Parse turns a translated string into a node tree. Numbered tags may nest
// and may be self-closing (<0/>). A tag left unclosed or closed out of
// order is an error; stray "<" characters that do not form a numbered tag
// are plain text.
func Parse(s string) ([]Node, error) {
	nodes, rest, err := parseNodes(s, -1)
	if err != nil {
		return nil, err
	}

	if rest != "" {
		return nil, fmt.Errorf("richtext: unexpected trailing content %q", rest)
	}

	return nodes, nil
}

// Render parses s and renders each indexed tag through renderers. Indexes
// without a renderer pass their children through unchanged; self-closing
// tags render with empty children.
func Render(s string, renderers map[int]Renderer) (string, error) {
	nodes, err := Parse(s)
	if err != nil {
		return "", err
	}

	return renderNodes(nodes, renderers), nil
}

func renderNodes(nodes []Node, renderers map[int]Renderer) string {
	var b strings.Builder

	for _, node := range nodes {
		if node.IsText() {
			b.WriteString(node.Text)
			continue
		}

		children := renderNodes(node.Children, renderers)
		if render, ok := renderers[node.Index]; ok {
			b.WriteString(render(children))
		} else {
			b.WriteString(children)
		}
	}

	return b.String()
}

// parseNodes consumes nodes until the closing tag for closeIndex (or end of
// input when closeIndex < 0) and returns the unconsumed remainder.
func parseNodes(s string, closeIndex int) ([]Node, string, error) {
	var nodes []Node

	for s != "" {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			nodes = appendText(nodes, s)
			s = ""
			break
		}

		if lt > 0 {
			nodes = appendText(nodes, s[:lt])
			s = s[lt:]
		}

		tag, ok := parseTag(s)
		if !ok {
			// A literal '<' that is not a numbered tag.
			nodes = appendText(nodes, "<")
			s = s[1:]
			continue
		}

		s = s[tag.length:]

		switch {
		case tag.closing:
			if tag.index != closeIndex {
				return nil, "", fmt.Errorf("richtext: unexpected closing tag </%d>", tag.index)
			}
			return nodes, s, nil

		case tag.selfClosing:
			nodes = append(nodes, Node{Index: tag.index})

		default:
			children, rest, err := parseNodes(s, tag.index)
			if err != nil {
				return nil, "", err
			}

			nodes = append(nodes, Node{Index: tag.index, Children: children})
			s = rest
		}
	}

	if closeIndex >= 0 {
		return nil, "", fmt.Errorf("richtext: missing closing tag </%d>", closeIndex)
	}

	return nodes, "", nil
}

type tag struct {
	index       int
	closing     bool
	selfClosing bool
	length      int
}

// parseTag recognizes <N>, </N> and <N/> at the start of s, where N is one
// or more decimal digits.
func parseTag(s string) (tag, bool) {
	var t tag

	i := 1 // past '<'
	if i < len(s) && s[i] == '/' {
		t.closing = true
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		t.index = t.index*10 + int(s[i]-'0')
		i++
	}

	if i == start {
		return tag{}, false
	}

	if !t.closing && i < len(s) && s[i] == '/' {
		t.selfClosing = true
		i++
	}

	if i >= len(s) || s[i] != '>' {
		return tag{}, false
	}

	t.length = i + 1

	return t, true
}

// appendText adds plain text, merging with a preceding text node.
func appendText(nodes []Node, text string) []Node {
	if text == "" {
		return nodes
	}

	if len(nodes) > 0 && nodes[len(nodes)-1].IsText() {
		nodes[len(nodes)-1].Text += text
		return nodes
	}

	return append(nodes, Node{Index: -1, Text: text})
}
