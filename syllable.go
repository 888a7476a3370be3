package syllabify

import (
	"strings"
)

// Stress is a stress mark attached to a syllable as a whole.
type Stress rune

// Stress marks as written in IPA transcriptions.
const (
	NoStress        Stress = 0
	PrimaryStress   Stress = 'ˈ' // U+02C8 MODIFIER LETTER VERTICAL LINE
	SecondaryStress Stress = 'ˌ' // U+02CC MODIFIER LETTER LOW VERTICAL LINE
)

// String returns the stress mark, or the empty string for NoStress.
func (s Stress) String() string {
	if s == NoStress {
		return ""
	}
	return string(rune(s))
}

func isStressMark(r rune) bool {
	return r == rune(PrimaryStress) || r == rune(SecondaryStress)
}

// Syllable is a single syllable of a transcription, decomposed into
// stress, onset (ω), nucleus (ν) and coda (κ).
//
// A syllable created from a transcription without any vowel has an empty
// nucleus, with all of the consonants in its onset.
type Syllable struct {
	stress  Stress
	onset   string
	nucleus string
	coda    string
}

// NewSyllable creates a syllable from its components.
func NewSyllable(stress Stress, onset, nucleus, coda string) Syllable {
	return Syllable{
		stress:  stress,
		onset:   onset,
		nucleus: nucleus,
		coda:    coda,
	}
}

// Stress returns the stress mark of the syllable, if any.
func (syl Syllable) Stress() Stress { return syl.stress }

// Onset returns the consonants preceding the nucleus. May be empty.
func (syl Syllable) Onset() string { return syl.onset }

// Nucleus returns the vowel phoneme defining the syllable's peak.
func (syl Syllable) Nucleus() string { return syl.nucleus }

// Coda returns the consonants following the nucleus. May be empty.
func (syl Syllable) Coda() string { return syl.coda }

// String joins stress, onset, nucleus and coda.
//
// Example:
//
//	stress 'ˈ', onset "z", nucleus "e͡ɪ", coda "" => "ˈze͡ɪ".
func (syl Syllable) String() string {
	var b strings.Builder
	b.Grow(len(syl.onset) + len(syl.nucleus) + len(syl.coda) + 2)
	b.WriteString(syl.stress.String())
	b.WriteString(syl.onset)
	b.WriteString(syl.nucleus)
	b.WriteString(syl.coda)
	return b.String()
}

// Join renders a sequence of syllables, delimited by SyllableDelimiter.
func Join(syllables []Syllable) string {
	ss := make([]string, len(syllables))
	for i, syl := range syllables {
		ss[i] = syl.String()
	}
	return strings.Join(ss, SyllableDelimiter)
}

// --- Builder ---------------------------------------------------------------

// syllableBuilder accumulates a syllable while a transcription is folded.
// Stress, onset and nucleus are fixed at creation time; the coda grows by
// appending, once when the following nucleus is found and once more when
// trailing consonants are flushed at end of input.
type syllableBuilder struct {
	stress  Stress
	onset   string
	nucleus string
	coda    string
}

func (b *syllableBuilder) appendCoda(coda string) {
	b.coda += coda
}

func (b *syllableBuilder) build() Syllable {
	return NewSyllable(b.stress, b.onset, b.nucleus, b.coda)
}
