/*
Package syllabify splits phonemic transcriptions into syllables.

A transcription is a string of IPA symbols, optionally carrying stress marks
(primary 'ˈ' and secondary 'ˌ') and an explicit syllable boundary ('.'). It is
tokenized against a language-specific phoneme inventory and every run of
consonants between two vowel nuclei is partitioned into the coda of the
preceding syllable and the onset of the following one, according to the
maximal onset principle: the onset takes as many consonants as still form a
valid onset cluster of the language.

	inv, _ := languages.Lookup("en")
	s, _ := syllabify.SyllabificationString(inv, "dɪˌsɔrgənəˈze͡ɪʃən")
	// s == "dɪ.ˌsɔr.gə.nə.ˈze͡ɪ.ʃən"

The algorithm consumes the inventory as a read-only capability (interface
Inventory). Loading inventories from a storage format is outside of this
package: see package yamlinventory for a YAML adapter and package languages
for the embedded language tables.

Further Reading

	https://en.wikipedia.org/wiki/Syllable#Components
	https://en.wikipedia.org/wiki/Maximal_onset_principle

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package syllabify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'syllabify'
func tracer() tracing.Trace {
	return tracing.Select("syllabify")
}
