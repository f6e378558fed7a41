package lz78

import "github.com/pkg/errors"

// Trie is the encoder-side dictionary: a 256-ary prefix tree whose nodes are
// identified by the dictionary code they were learned with.
//
// Nodes live in an arena indexed by code. A child link holds the child's code,
// StopCode meaning "no child"; StopCode is never assigned to a learned entry.
type Trie struct {
	nodes []trieNode // nodes[EmptyCode] is the root; nodes[StopCode] is unused.
}

type trieNode struct {
	children [Alphabet]uint16
}

// NewTrie returns a trie holding only the root.
func NewTrie() *Trie {
	t := &Trie{
		nodes: make([]trieNode, StartCode, 256),
	}

	return t
}

// Root returns the code of the root node (EmptyCode).
func (t *Trie) Root() uint16 {
	return EmptyCode
}

// Len returns the number of learned entries.
func (t *Trie) Len() int {
	return len(t.nodes) - int(StartCode)
}

// NextCode returns the code the next learned entry must carry.
func (t *Trie) NextCode() uint16 {
	return uint16(len(t.nodes)) // #nosec G115 -- bounded by MaxCode
}

// Step returns the child of node for sym.
func (t *Trie) Step(node uint16, sym byte) (uint16, bool) {
	child := t.nodes[node].children[sym]

	return child, child != StopCode
}

// Learn adds a child of node for sym tagged with code.
// Codes must be learned in contiguous order starting at StartCode.
func (t *Trie) Learn(node uint16, sym byte, code uint16) error {
	if int(node) >= len(t.nodes) || node == StopCode {
		return errors.Wrapf(ErrUnknownCode, "trie node=%d", node)
	}
	if t.nodes[node].children[sym] != StopCode {
		return errors.Wrapf(ErrTrieSlotTaken, "node=%d sym=%d", node, sym)
	}
	if code != t.NextCode() || code >= MaxCode {
		return errors.Wrapf(ErrCodeOutOfOrder, "code=%d want=%d", code, t.NextCode())
	}

	// A fresh zero node replaces whatever an earlier generation left in the slot.
	t.nodes = append(t.nodes, trieNode{})
	t.nodes[node].children[sym] = code

	return nil
}

// Reset drops every learned entry, leaving only the root.
// Stale child links in the arena are unreachable: every node reachable from the
// root after a reset was appended fresh after it.
func (t *Trie) Reset() {
	t.nodes = t.nodes[:StartCode]
	t.nodes[EmptyCode] = trieNode{}
}

// Walk calls fn for every learned entry with its code and full byte sequence,
// in depth-first order. The word slice is only valid during the call.
func (t *Trie) Walk(fn func(code uint16, word []byte)) {
	type frame struct {
		node  uint16
		sym   byte
		depth int
	}

	var word []byte
	stack := []frame{{node: EmptyCode}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node != EmptyCode {
			// Preorder: word already holds the parent's path as its prefix.
			word = append(word[:f.depth-1], f.sym)
			fn(f.node, word)
		}

		for sym := Alphabet - 1; sym >= 0; sym-- {
			child := t.nodes[f.node].children[sym]
			if child == StopCode {
				continue
			}
			stack = append(stack, frame{node: child, sym: byte(sym), depth: f.depth + 1})
		}
	}
}
