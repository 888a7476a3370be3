/*
Package languages provides the phoneme inventories of natural languages.

Inventories are embedded into the binary as YAML files (see package
yamlinventory for the format). Clients select an inventory by a BCP 47
language identifier, e.g. "en" or "en-US"; regional variants are matched to
the best available inventory.

Inventories are loaded on first request and shared afterwards. They are
read-only and may be used concurrently.
*/
package languages

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/yamlinventory"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'syllabify.languages'
func tracer() tracing.Trace {
	return tracing.Select("syllabify.languages")
}

//go:embed data/*.yml
var data embed.FS

// ErrUnknownLanguage is returned for language identifiers without an inventory.
var ErrUnknownLanguage = errors.New("unknown language")

type registry struct {
	once      sync.Once
	err       error
	names     []string // base names of embedded files, e.g. "en"
	tags      []language.Tag
	matcher   language.Matcher
	mx        sync.Mutex
	inventory map[string]*syllabify.PhonemeInventory
}

var languages registry

func (reg *registry) setup() error {
	reg.once.Do(func() {
		entries, err := data.ReadDir("data")
		if err != nil {
			reg.err = err
			return
		}
		for _, entry := range entries {
			name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
			tag, err := language.Parse(name)
			if err != nil {
				tracer().Errorf("skipping inventory file %s: %v", entry.Name(), err)
				continue
			}
			reg.names = append(reg.names, name)
			reg.tags = append(reg.tags, tag)
		}
		reg.matcher = language.NewMatcher(reg.tags)
		reg.inventory = make(map[string]*syllabify.PhonemeInventory, len(reg.names))
		tracer().Debugf("embedded inventories: %v", reg.names)
	})
	return reg.err
}

// Supported returns the identifiers of all languages with an inventory.
func Supported() []string {
	if err := languages.setup(); err != nil {
		return nil
	}
	return append([]string(nil), languages.names...)
}

// Lookup returns the phoneme inventory for a language identifier.
// Identifiers are matched against the available inventories, i.e. "en-GB"
// will select the English inventory.
//
// Returns an error wrapping ErrUnknownLanguage if no inventory exists for the
// language, even if the identifier is related to a supported language.
func Lookup(id string) (*syllabify.PhonemeInventory, error) {
	if err := languages.setup(); err != nil {
		return nil, err
	}
	name, err := languages.match(id)
	if err != nil {
		return nil, err
	}
	languages.mx.Lock()
	defer languages.mx.Unlock()
	if inv, ok := languages.inventory[name]; ok {
		return inv, nil
	}
	inv, err := load(name)
	if err != nil {
		return nil, err
	}
	languages.inventory[name] = inv
	return inv, nil
}

func (reg *registry) match(id string) (string, error) {
	tag, err := language.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q (%v)", ErrUnknownLanguage, id, err)
	}
	// The matcher falls back to related or default languages with low
	// confidence; only accept a tag for the language of an inventory.
	base, certainty := tag.Base()
	_, index, confidence := reg.matcher.Match(tag)
	if certainty != language.Exact || confidence == language.No || index >= len(reg.tags) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	if supported, _ := reg.tags[index].Base(); supported != base {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
	}
	tracer().Debugf("language %q matches inventory %q (confidence %v)", id, reg.names[index], confidence)
	return reg.names[index], nil
}

func load(name string) (*syllabify.PhonemeInventory, error) {
	f, err := data.Open(path.Join("data", name+".yml"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	inv, err := yamlinventory.LoadLanguage(name, name, f)
	if err != nil {
		return nil, fmt.Errorf("inventory %q: %w", name, err)
	}
	return inv, nil
}

// Syllabify splits a transcription into syllables, using the inventory of
// language id. The transcription is normalized to Unicode NFC first.
func Syllabify(id, transcription string) ([]syllabify.Syllable, error) {
	inv, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return syllabify.Syllabify(inv, norm.NFC.String(transcription))
}

// SyllabificationString returns a transcription with syllable delimiters
// inserted, using the inventory of language id.
func SyllabificationString(id, transcription string) (string, error) {
	syllables, err := Syllabify(id, transcription)
	if err != nil {
		return "", err
	}
	return syllabify.Join(syllables), nil
}
