package syllabify

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrInvalidPhoneme is matched by errors of type *InvalidPhonemeError.
var ErrInvalidPhoneme = errors.New("invalid phoneme")

// ErrNoInventory is returned when syllabifying without a phoneme inventory.
var ErrNoInventory = errors.New("no phoneme inventory")

// InvalidPhonemeError is returned for a phoneme token which is neither a
// consonant nor a nucleus of the inventory, nor the syllable delimiter.
type InvalidPhonemeError struct {
	Token string // offending token, without stress mark
}

func (e *InvalidPhonemeError) Error() string {
	return fmt.Sprintf("invalid phoneme: %q", e.Token)
}

// Is lets errors.Is(err, ErrInvalidPhoneme) match.
func (e *InvalidPhonemeError) Is(target error) bool {
	return target == ErrInvalidPhoneme
}

// Syllabifier splits a single transcription into syllables.
//
// The syllables are computed on first request and cached afterwards; a
// Syllabifier is not meant to be used from more than one goroutine.
type Syllabifier struct {
	inventory     Inventory
	transcription string
	done          bool
	syllables     []Syllable
	err           error
}

// New creates a Syllabifier for a transcription, using the phoneme
// inventory of the transcription's language.
func New(inventory Inventory, transcription string) *Syllabifier {
	return &Syllabifier{
		inventory:     inventory,
		transcription: transcription,
	}
}

// Transcription returns the transcription to split.
func (s *Syllabifier) Transcription() string {
	return s.transcription
}

// Syllables returns the syllables of the transcription, from left to right.
// An empty transcription results in no syllables at all.
//
// If the transcription contains a phoneme which is neither a consonant nor a
// nucleus, an *InvalidPhonemeError is returned and no syllables.
func (s *Syllabifier) Syllables() ([]Syllable, error) {
	if !s.done {
		s.syllables, s.err = s.build()
		s.done = true
	}
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.syllables), nil
}

// Render returns the syllables joined by SyllableDelimiter.
func (s *Syllabifier) Render() (string, error) {
	syllables, err := s.Syllables()
	if err != nil {
		return "", err
	}
	return Join(syllables), nil
}

func (s *Syllabifier) build() ([]Syllable, error) {
	if s.inventory == nil {
		return nil, ErrNoInventory
	}
	state := newFoldState(s.inventory)
	for _, token := range tokenizerFor(s.inventory).Tokens(s.transcription) {
		if err := state.step(token); err != nil {
			tracer().Errorf("cannot syllabify %q: %v", s.Transcription(), err)
			return nil, err
		}
	}
	state.flush()
	return state.result(), nil
}

// Syllabify splits transcription into syllables.
func Syllabify(inventory Inventory, transcription string) ([]Syllable, error) {
	return New(inventory, transcription).Syllables()
}

// SyllabificationString returns transcription with syllable delimiters
// inserted.
//
// Example:
//
//	"ˈnʌtʃɛl" => "ˈnʌt.ʃɛl".
func SyllabificationString(inventory Inventory, transcription string) (string, error) {
	return New(inventory, transcription).Render()
}

// --- Folding tokens into syllables ----------------------------------------

// foldState is threaded through the tokens of a transcription.
//
// buffer holds the consonants (and possibly syllable delimiters) seen since
// the last nucleus. stress is pending until the next syllable is created.
type foldState struct {
	inventory Inventory
	stress    Stress
	buffer    []string
	syllables []*syllableBuilder
}

func newFoldState(inventory Inventory) *foldState {
	return &foldState{
		inventory: inventory,
		buffer:    make([]string, 0, 8),
	}
}

// step consumes a single token.
func (st *foldState) step(token string) error {
	phoneme := strings.TrimSpace(token)
	if phoneme == "" {
		return nil
	}
	if r, size := utf8.DecodeRuneInString(phoneme); isStressMark(r) {
		st.stress = Stress(r)
		phoneme = phoneme[size:]
	}
	switch {
	case st.inventory.IsNucleus(phoneme):
		st.assemble(phoneme)
	case phoneme == SyllableDelimiter || st.inventory.IsConsonant(phoneme):
		st.buffer = append(st.buffer, phoneme)
	default:
		return &InvalidPhonemeError{Token: phoneme}
	}
	return nil
}

// assemble starts a new syllable at nucleus, handing the leading part of the
// buffered consonants to the previous syllable's coda.
func (st *foldState) assemble(nucleus string) {
	coda, onset := st.split()
	if last := st.last(); last != nil {
		last.appendCoda(coda)
	} else {
		onset = coda + onset // nothing to close at start of word
	}
	tracer().Debugf("syllable: stress=%q onset=%q nucleus=%q, previous coda +%q",
		st.stress.String(), onset, nucleus, coda)
	st.syllables = append(st.syllables, &syllableBuilder{
		stress:  st.stress,
		onset:   onset,
		nucleus: nucleus,
	})
	st.stress = NoStress
	st.buffer = st.buffer[:0]
}

// split partitions the buffer into coda and onset.
//
// An explicit delimiter splits the buffer right there. Otherwise split points
// are tried from the start of the buffer on, i.e. beginning with the longest
// possible onset, and the first one leaving a valid onset wins. At the start
// of a word every consonant belongs to the onset.
func (st *foldState) split() (coda, onset string) {
	if at := slices.Index(st.buffer, SyllableDelimiter); at >= 0 {
		return joinPhonemes(st.buffer[:at]), joinPhonemes(st.buffer[at+1:])
	}
	for midpoint := 0; midpoint <= len(st.buffer); midpoint++ {
		onset = joinPhonemes(st.buffer[midpoint:])
		if st.acceptsOnset(onset) {
			return joinPhonemes(st.buffer[:midpoint]), onset
		}
	}
	return "", joinPhonemes(st.buffer)
}

func (st *foldState) acceptsOnset(onset string) bool {
	return len(st.buffer) == 0 || len(st.syllables) == 0 || st.inventory.IsOnset(onset)
}

// flush handles consonants trailing the last nucleus.
func (st *foldState) flush() {
	rest := joinPhonemes(st.buffer)
	st.buffer = st.buffer[:0]
	if rest == "" {
		if st.stress != NoStress {
			tracer().Infof("dropping trailing stress mark %q", st.stress.String())
			st.stress = NoStress
		}
		return
	}
	if last := st.last(); last != nil {
		if st.stress != NoStress {
			tracer().Infof("dropping stress mark %q of trailing consonants %q", st.stress.String(), rest)
		}
		last.appendCoda(rest)
	} else {
		st.syllables = append(st.syllables, &syllableBuilder{
			stress: st.stress,
			onset:  rest,
		})
	}
	st.stress = NoStress
}

func (st *foldState) last() *syllableBuilder {
	if len(st.syllables) == 0 {
		return nil
	}
	return st.syllables[len(st.syllables)-1]
}

func (st *foldState) result() []Syllable {
	syllables := make([]Syllable, len(st.syllables))
	for i, b := range st.syllables {
		syllables[i] = b.build()
	}
	return syllables
}

// joinPhonemes concatenates phonemes, leaving out syllable delimiters.
func joinPhonemes(phonemes []string) string {
	var b strings.Builder
	for _, p := range phonemes {
		if p != SyllableDelimiter {
			b.WriteString(p)
		}
	}
	return b.String()
}
