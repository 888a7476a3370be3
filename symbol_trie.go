package syllabify

import (
	"sort"

	"github.com/derekparker/trie"
)

// symbolTrie is a prefix tree of phoneme strings (symbols or onset clusters).
// Every key remembers the position it has been listed at first.
type symbolTrie struct {
	trie    *trie.Trie
	entries int
}

func newSymbolTrie() *symbolTrie {
	return &symbolTrie{trie: trie.New()}
}

// Add enters key at listing position pos. Re-entering a key is a no-op,
// i.e. the first position wins.
func (st *symbolTrie) Add(key string, pos int) {
	if key == "" {
		return
	}
	if _, found := st.trie.Find(key); found {
		return
	}
	st.trie.Add(key, pos)
	st.entries++
}

// Contains is true if key has been entered.
func (st *symbolTrie) Contains(key string) bool {
	if key == "" {
		return false
	}
	_, found := st.trie.Find(key)
	return found
}

// Position returns the listing position of key.
func (st *symbolTrie) Position(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	node, found := st.trie.Find(key)
	if !found {
		return 0, false
	}
	pos, ok := node.Meta().(int)
	return pos, ok
}

// Extensions returns all keys which start with prefix and are longer than
// prefix, in lexical order.
func (st *symbolTrie) Extensions(prefix string) []string {
	if prefix == "" || !st.trie.HasKeysWithPrefix(prefix) {
		return nil
	}
	var ext []string
	for _, key := range st.trie.PrefixSearch(prefix) {
		if key != prefix {
			ext = append(ext, key)
		}
	}
	sort.Strings(ext)
	return ext
}

// Keys returns all keys in lexical order.
func (st *symbolTrie) Keys() []string {
	keys := st.trie.Keys()
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct keys.
func (st *symbolTrie) Len() int {
	return st.entries
}
