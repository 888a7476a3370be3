// Package commands defines the syllabify CLI.
//
// Commands
//
//   - syllabify [transcription...]   Print transcriptions split into syllables
//   - syllabify inventory            List the phoneme inventory in use
//
// Transcriptions are taken from the command line or, if there are none, read
// from standard input, one per line.
//
// # Configuration
//
// The inventory is selected by flag --lang, falling back to environment
// variable SYLLABIFY_LANG, then to the user's locale, then to English.
// Flag --inventory reads an inventory from a YAML file instead.
package commands
