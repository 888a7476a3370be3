/*
Package yamlinventory reads phoneme inventories in YAML format.

An inventory lists consonants, nuclei and valid onset clusters:

	consonants: [t͡ʃ, p, t, k, s]
	nuclei:     [e͡ɪ, a, e]
	onsets:     ["", p, t, k, s, st]

The lists may as well be nested under a language key, possibly with more
than one language per file:

	en:
	  consonants: [...]
	  nuclei:     [...]
	  onsets:     [...]

The order of consonants and nuclei is significant: multi-character symbols
have to be listed before any of their prefixes. All symbols are normalized
to Unicode NFC.
*/
package yamlinventory

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/syllabify"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

type document struct {
	Consonants []string `yaml:"consonants"`
	Nuclei     []string `yaml:"nuclei"`
	Onsets     []string `yaml:"onsets"`
}

type entry struct {
	class  syllabify.SymbolClass
	symbol string
}

// Reader streams inventory entries from a YAML document.
// The document is decoded on the first call to Next.
type Reader struct {
	source   io.Reader
	language string
	decoded  bool
	entries  []entry
	index    int
	err      error
}

// LoadInventory parses YAML inventory data and returns a ready-to-use
// inventory. If the data contains more than one language, use LoadLanguage.
func LoadInventory(name string, reader io.Reader) (*syllabify.PhonemeInventory, error) {
	return syllabify.LoadInventory(name, NewReader(reader))
}

// LoadLanguage parses the inventory of a single language from YAML data.
func LoadLanguage(name, language string, reader io.Reader) (*syllabify.PhonemeInventory, error) {
	return syllabify.LoadInventory(name, NewLanguageReader(reader, language))
}

// NewReader creates a reader for a document listing a single inventory,
// either at top level or under a single language key.
func NewReader(reader io.Reader) *Reader {
	return &Reader{source: reader}
}

// NewLanguageReader creates a reader for the inventory nested under key
// language. An inventory at top level is accepted as well.
func NewLanguageReader(reader io.Reader, language string) *Reader {
	return &Reader{source: reader, language: language}
}

// Language returns the language key the inventory has been found under,
// if any. It is valid after the first call to Next.
func (r *Reader) Language() string {
	return r.language
}

// Next returns the next inventory entry as (class, symbol).
// Consonants come first, then nuclei, then onsets.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (syllabify.SymbolClass, string, error) {
	if !r.decoded {
		r.decoded = true
		r.err = r.decode()
	}
	if r.err != nil {
		return 0, "", r.err
	}
	if r.index >= len(r.entries) {
		return 0, "", io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.class, e.symbol, nil
}

func (r *Reader) decode() error {
	var root yaml.Node
	if err := yaml.NewDecoder(r.source).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty inventory document")
		}
		return fmt.Errorf("cannot decode inventory: %w", err)
	}
	node, err := r.selectInventory(&root)
	if err != nil {
		return err
	}
	var doc document
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("cannot decode inventory: %w", err)
	}
	r.collect(syllabify.Consonant, doc.Consonants)
	r.collect(syllabify.Nucleus, doc.Nuclei)
	r.collect(syllabify.Onset, doc.Onsets)
	return nil
}

// selectInventory finds the mapping node holding the inventory lists.
func (r *Reader) selectInventory(root *yaml.Node) (*yaml.Node, error) {
	mapping := root
	if mapping.Kind == yaml.DocumentNode && len(mapping.Content) > 0 {
		mapping = mapping.Content[0]
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("inventory document is not a mapping (line %d)", mapping.Line)
	}
	var keys []string
	values := make(map[string]*yaml.Node)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		switch key {
		case "consonants", "nuclei", "onsets":
			return mapping, nil // inventory at top level
		}
		keys = append(keys, key)
		values[key] = mapping.Content[i+1]
	}
	if r.language != "" {
		node, ok := values[r.language]
		if !ok {
			return nil, fmt.Errorf("no inventory for language %q", r.language)
		}
		return node, nil
	}
	if len(keys) != 1 {
		sort.Strings(keys)
		return nil, fmt.Errorf("document holds inventories for %v, please select a language", keys)
	}
	r.language = keys[0]
	return values[keys[0]], nil
}

func (r *Reader) collect(class syllabify.SymbolClass, symbols []string) {
	for _, symbol := range symbols {
		r.entries = append(r.entries, entry{
			class:  class,
			symbol: norm.NFC.String(symbol),
		})
	}
}
