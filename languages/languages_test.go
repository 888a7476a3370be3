package languages

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEnglishScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "syllabify.languages")
	defer teardown()
	//
	tests := []struct {
		transcription string
		want          string
	}{
		{transcription: "dɪˌsɔrgənəˈze͡ɪʃən", want: "dɪ.ˌsɔr.gə.nə.ˈze͡ɪ.ʃən"},
		{transcription: "ˈnʌtʃɛl", want: "ˈnʌt.ʃɛl"},
		{transcription: "ˈklɔɪŋ", want: "ˈklɔ.ɪŋ"},
		{transcription: "ˈkɔrt͡ʃˌɪp", want: "ˈkɔr.ˌt͡ʃɪp"}, // stress moves before the onset
		{transcription: "blˈæstfˌɚnəs", want: "ˈblæst.ˌfɚ.nəs"},
		{transcription: "ɪkˈstrim", want: "ɪk.ˈstrim"},
	}
	for _, tt := range tests {
		got, err := SyllabificationString("en", tt.transcription)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("syllabification mismatch for %q: got %q, want %q", tt.transcription, got, tt.want)
		}
	}
}

func TestLookupMatchesRegionalVariants(t *testing.T) {
	en, err := Lookup("en")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"en-US", "en-GB", "en_US", "en-AU"} {
		inv, err := Lookup(id)
		if err != nil {
			t.Fatalf("lookup of %s failed: %v", id, err)
		}
		if inv != en {
			t.Fatalf("expected %s to share the English inventory", id)
		}
	}
}

func TestLookupUnknownLanguage(t *testing.T) {
	// tlh and und are matched to English by the CLDR fallback rules
	for _, id := range []string{"fr", "tlh", "und", "de-CH", "", "not a language"} {
		if _, err := Lookup(id); !errors.Is(err, ErrUnknownLanguage) {
			t.Fatalf("expected ErrUnknownLanguage for %q, got %v", id, err)
		}
	}
	if _, err := Syllabify("fr", "ʒə"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) == 0 || langs[0] != "en" {
		t.Fatalf("expected English to be supported, have %v", langs)
	}
}

func TestEmbeddedInventoriesAreClean(t *testing.T) {
	for _, id := range Supported() {
		inv, err := Lookup(id)
		if err != nil {
			t.Fatal(err)
		}
		if findings := inv.Lint(); len(findings) > 0 {
			t.Fatalf("inventory %s has findings: %v", id, findings)
		}
	}
}

func TestConcurrentLookup(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := SyllabificationString("en-US", "dɪˌsɔrgənəˈze͡ɪʃən"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
