// Package trie implements a rune-keyed prefix tree for fast whole-word and
// prefix lookups over a dictionary of strings.
//
// Complexity (L = length of the word or prefix in runes):
//
//   - Add, Contains, HasPrefix: O(L)
//   - Words(prefix): O(L + size of the matching subtree), plus sorting
package trie

import (
	"slices"
	"strings"
)

// node is one rune position in the tree.
type node struct {
	children map[rune]*node
	word     bool // a stored word ends here
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a dictionary of words. The zero value is not usable; call New.
type Trie struct {
	root  *node
	words int
}

// New returns a Trie holding words.
func New(words ...string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		t.Add(w)
	}

	return t
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int { return t.words }

// Add stores word and reports whether it was not already present.
// The empty string is a valid word.
func (t *Trie) Add(word string) bool {
	curr := t.root
	for _, r := range word {
		next, ok := curr.children[r]
		if !ok {
			next = newNode()
			curr.children[r] = next
		}
		curr = next
	}
	if curr.word {
		return false
	}
	curr.word = true
	t.words++

	return true
}

// Contains reports whether word was added.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.word
}

// HasPrefix reports whether any stored word starts with prefix.
// Every trie has the empty prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Search is Contains when wholeWord is true and HasPrefix otherwise.
func (t *Trie) Search(value string, wholeWord bool) bool {
	if wholeWord {
		return t.Contains(value)
	}

	return t.HasPrefix(value)
}

// Words returns every stored word starting with prefix, sorted.
func (t *Trie) Words(prefix string) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}

	var out []string
	var buf strings.Builder
	buf.WriteString(prefix)
	collect(start, &buf, &out)
	slices.Sort(out)

	return out
}

// walk follows s from the root and returns the node it ends on, or nil.
func (t *Trie) walk(s string) *node {
	curr := t.root
	for _, r := range s {
		next, ok := curr.children[r]
		if !ok {
			return nil
		}
		curr = next
	}

	return curr
}

// collect appends every word below n; buf holds the path to n.
func collect(n *node, buf *strings.Builder, out *[]string) {
	if n.word {
		*out = append(*out, buf.String())
	}
	base := buf.String()
	for r, child := range n.children {
		buf.Reset()
		buf.WriteString(base)
		buf.WriteRune(r)
		collect(child, buf, out)
	}
}
