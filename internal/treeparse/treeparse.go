// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treeparse parses a compact textual notation for ordered trees,
// intended for test and debug input: a node is a value token optionally
// followed by a parenthesized list of child subtrees.
//
//	1(2(4) 3)
//
// describes a root 1 with children 2 and 3, where 2 has the single child
// 4. Value tokens are any run of characters excluding whitespace and
// parentheses. Empty input describes the empty tree.
//
// Parsing uses an explicit stack of open nodes, so input depth is not
// bounded by the call stack.
package treeparse

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Node is one parsed node: a value and its child subtrees in input order.
type Node struct {
	Value    string
	Children []Node
}

// Parse parses the tree notation in s. It returns nil for input that is
// empty or all whitespace.
func Parse(s string) (n *Node, err error) {
	p := makeParser(s)
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Wrapf(e, "parsing %q", s)
				return
			}
			panic(r)
		}
	}()
	return p.tree(), nil
}

// parser tokenizes the input; tokens are separated by whitespace, and the
// parentheses are always tokens of their own. Methods panic with errors
// that Parse recovers and returns.
type parser struct {
	original string
	tokens   []string
}

func makeParser(input string) parser {
	p := parser{original: input}
	s := input
	for len(s) > 0 {
		start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
		if start == -1 {
			break
		}
		s = s[start:]
		if s[0] == '(' || s[0] == ')' {
			p.tokens = append(p.tokens, s[:1])
			s = s[1:]
			continue
		}
		end := strings.IndexFunc(s, func(r rune) bool {
			return unicode.IsSpace(r) || r == '(' || r == ')'
		})
		if end == -1 {
			end = len(s)
		}
		p.tokens = append(p.tokens, s[:end])
		s = s[end:]
	}
	return p
}

// tree consumes all tokens and assembles the single root. The open stack
// holds the nodes whose child lists are still being collected; a value
// token followed by "(" opens a node, any other completed node attaches
// to the innermost open one.
func (p *parser) tree() *Node {
	var root *Node
	var open []Node
	attach := func(n Node) {
		if len(open) > 0 {
			top := &open[len(open)-1]
			top.Children = append(top.Children, n)
			return
		}
		if root != nil {
			p.errf("unexpected %q after complete tree", n.Value)
		}
		r := n
		root = &r
	}
	for !p.done() {
		switch tok := p.next(); tok {
		case "(":
			p.errf("expected a value, found %q", tok)
		case ")":
			if len(open) == 0 {
				p.errf("unmatched closing parenthesis")
			}
			n := open[len(open)-1]
			open = open[:len(open)-1]
			if len(n.Children) == 0 {
				p.errf("empty child list for %q", n.Value)
			}
			attach(n)
		default:
			n := Node{Value: tok}
			if p.peek() == "(" {
				p.next()
				open = append(open, n)
			} else {
				attach(n)
			}
		}
	}
	if len(open) > 0 {
		p.errf("missing closing parenthesis")
	}
	return root
}

func (p *parser) done() bool {
	return len(p.tokens) == 0
}

// peek returns the next token without consuming it, or "" at the end.
func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.tokens[0]
}

// next consumes and returns the next token, or "" at the end.
func (p *parser) next() string {
	if p.done() {
		return ""
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok
}

func (p *parser) errf(format string, args ...any) {
	panic(errors.Newf(format, args...))
}
