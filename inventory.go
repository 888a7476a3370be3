package syllabify

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
)

// Inventory is the read-only phoneme inventory of a language.
//
// Symbols returns all consonants, followed by all nuclei, in the order they
// are listed. The order matters for tokenization: a multi-character symbol
// has to be listed before any symbol which is a prefix of it.
//
// IsOnset reports whether a (joined) consonant cluster may start a syllable.
// Inventories usually list the empty cluster and all single consonants
// which may start a syllable.
//
// Syllabification does not check the well-formedness of an inventory.
type Inventory interface {
	IsConsonant(string) bool
	IsNucleus(string) bool
	IsOnset(string) bool
	Symbols() []string
}

// SymbolClass tells consonants, nuclei and onset clusters apart when
// loading an inventory.
type SymbolClass int8

// Inventory entries are one of these classes.
const (
	Consonant SymbolClass = iota + 1
	Nucleus
	Onset
)

func (c SymbolClass) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Nucleus:
		return "nucleus"
	case Onset:
		return "onset"
	}
	return fmt.Sprintf("SymbolClass(%d)", int8(c))
}

// InventoryReader yields inventory entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type InventoryReader interface {
	Next() (class SymbolClass, symbol string, err error)
}

// PhonemeInventory is an Inventory held in memory.
//
// A PhonemeInventory is immutable after loading and may be shared between
// goroutines and Syllabifiers.
type PhonemeInventory struct {
	consonants  *hashset.Set
	nuclei      *hashset.Set
	onsets      *symbolTrie // onset clusters with their entry positions
	emptyOnset  bool        // is the empty onset listed?
	order       []string    // consonants, in listed order
	nucleiOrder []string    // nuclei, in listed order
	tokOnce     sync.Once
	tok         *tokenizer
	Identifier  string // Identifies the inventory
}

var _ Inventory = (*PhonemeInventory)(nil)

// LoadInventory builds an inventory from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package yamlinventory to parse concrete formats and feed this API.
// Empty consonant or nucleus symbols are skipped. An empty onset marks
// syllables without initial consonants as valid.
func LoadInventory(name string, reader InventoryReader) (inv *PhonemeInventory, err error) {
	inv = &PhonemeInventory{
		consonants: hashset.New(),
		nuclei:     hashset.New(),
		onsets:     newSymbolTrie(),
		Identifier: fmt.Sprintf("inventory: %s", name),
	}
	var class SymbolClass
	var symbol string
	n := 0
	for {
		class, symbol, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = inv.add(class, symbol, n); err != nil {
			return nil, err
		}
		n++
	}
	stats := inv.Stats()
	tracer().Infof("phoneme inventory %s: consonants=%d nuclei=%d onsets=%d longest onset=%d",
		name, stats.Consonants, stats.Nuclei, stats.Onsets, stats.LongestOnset)
	return inv, nil
}

// NewInventory creates an inventory from in-memory lists.
func NewInventory(name string, consonants, nuclei, onsets []string) (*PhonemeInventory, error) {
	return LoadInventory(name, &listReader{
		lists: [][]string{consonants, nuclei, onsets},
	})
}

func (inv *PhonemeInventory) add(class SymbolClass, symbol string, pos int) error {
	switch class {
	case Consonant:
		if symbol == "" || inv.consonants.Contains(symbol) {
			return nil
		}
		inv.consonants.Add(symbol)
		inv.order = append(inv.order, symbol)
	case Nucleus:
		if symbol == "" || inv.nuclei.Contains(symbol) {
			return nil
		}
		inv.nuclei.Add(symbol)
		inv.nucleiOrder = append(inv.nucleiOrder, symbol)
	case Onset:
		if symbol == "" {
			inv.emptyOnset = true
			return nil
		}
		inv.onsets.Add(symbol, pos)
	default:
		return fmt.Errorf("inventory entry %q has unknown class %v", symbol, class)
	}
	return nil
}

// IsConsonant is part of interface Inventory.
func (inv *PhonemeInventory) IsConsonant(symbol string) bool {
	return inv.consonants.Contains(symbol)
}

// IsNucleus is part of interface Inventory.
func (inv *PhonemeInventory) IsNucleus(symbol string) bool {
	return inv.nuclei.Contains(symbol)
}

// IsOnset is part of interface Inventory.
func (inv *PhonemeInventory) IsOnset(cluster string) bool {
	if cluster == "" {
		return inv.emptyOnset
	}
	return inv.onsets.Contains(cluster)
}

// Symbols is part of interface Inventory.
func (inv *PhonemeInventory) Symbols() []string {
	symbols := make([]string, 0, len(inv.order)+len(inv.nucleiOrder))
	symbols = append(symbols, inv.order...)
	return append(symbols, inv.nucleiOrder...)
}

// Consonants returns the consonants in listed order.
func (inv *PhonemeInventory) Consonants() []string {
	return append([]string(nil), inv.order...)
}

// Nuclei returns the nuclei in listed order.
func (inv *PhonemeInventory) Nuclei() []string {
	return append([]string(nil), inv.nucleiOrder...)
}

// Onsets returns the onset clusters in lexical order, starting with the
// empty onset if it is listed.
func (inv *PhonemeInventory) Onsets() []string {
	onsets := inv.onsets.Keys()
	if inv.emptyOnset {
		onsets = append([]string{""}, onsets...)
	}
	return onsets
}

func (inv *PhonemeInventory) tokenizer() *tokenizer {
	inv.tokOnce.Do(func() {
		inv.tok = newTokenizer(inv.Symbols())
	})
	return inv.tok
}

// InventoryStats reports the size of an inventory.
type InventoryStats struct {
	Consonants   int
	Nuclei       int
	Onsets       int // including the empty onset
	LongestOnset int // number of phonemes of the longest onset cluster
}

// Stats reports the size of the inventory.
func (inv *PhonemeInventory) Stats() InventoryStats {
	stats := InventoryStats{
		Consonants: inv.consonants.Size(),
		Nuclei:     inv.nuclei.Size(),
		Onsets:     inv.onsets.Len(),
	}
	if inv.emptyOnset {
		stats.Onsets++
	}
	tok := inv.tokenizer()
	for _, onset := range inv.onsets.Keys() {
		stats.LongestOnset = max(stats.LongestOnset, len(tok.Tokens(onset)))
	}
	return stats
}

// Lint reports problems of the inventory which may lead to surprising
// syllabifications:
//
//   - symbols which will never be matched, as an earlier listed symbol is a prefix of them
//   - symbols listed both as consonant and as nucleus
//   - onsets which are not made up of consonants of the inventory
//
// Onsets are reported in listing order, together with their entry number
// within the inventory source.
//
// Lint is advisory only. Syllabification does not depend on it.
func (inv *PhonemeInventory) Lint() []string {
	var findings []string
	symbols := inv.Symbols()
	index := newSymbolTrie()
	for i, symbol := range symbols {
		index.Add(symbol, i)
	}
	for i, symbol := range symbols {
		for _, longer := range index.Extensions(symbol) {
			if j, ok := index.Position(longer); ok && j > i {
				findings = append(findings, fmt.Sprintf(
					"symbol %q is shadowed by %q, which is listed before it", longer, symbol))
			}
		}
	}
	for _, symbol := range inv.order {
		if inv.nuclei.Contains(symbol) {
			findings = append(findings, fmt.Sprintf(
				"symbol %q is listed both as consonant and as nucleus", symbol))
		}
	}
	tok := inv.tokenizer()
	onsets := inv.onsets.Keys()
	slices.SortStableFunc(onsets, func(a, b string) int {
		i, _ := inv.onsets.Position(a)
		j, _ := inv.onsets.Position(b)
		return cmp.Compare(i, j)
	})
	for _, onset := range onsets {
		tokens := tok.Tokens(onset)
		joined := ""
		valid := true
		for _, t := range tokens {
			joined += t
			valid = valid && inv.IsConsonant(t)
		}
		if !valid || joined != onset {
			pos, _ := inv.onsets.Position(onset)
			findings = append(findings, fmt.Sprintf(
				"onset %q (entry %d) is not a sequence of consonants", onset, pos+1))
		}
	}
	return findings
}

// --- In-memory reader ------------------------------------------------------

// listReader streams lists of consonants, nuclei and onsets, in this order.
type listReader struct {
	lists [][]string
	class int
	index int
}

func (r *listReader) Next() (SymbolClass, string, error) {
	for r.class < len(r.lists) {
		if r.index < len(r.lists[r.class]) {
			symbol := r.lists[r.class][r.index]
			r.index++
			return SymbolClass(r.class + 1), symbol, nil
		}
		r.class++
		r.index = 0
	}
	return 0, "", io.EOF
}
