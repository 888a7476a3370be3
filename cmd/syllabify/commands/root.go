package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/npillmayer/syllabify"
	"github.com/npillmayer/syllabify/languages"
	"github.com/npillmayer/syllabify/yamlinventory"
	"golang.org/x/text/unicode/norm"
)

const defaultLanguage = "en"

type options struct {
	lang      string
	inventory string
	detail    bool
	trace     string
}

// Execute runs the syllabify command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the root command with all of its sub-commands.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "syllabify [transcription...]",
		Short:        "Split IPA transcriptions into syllables",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := traceLevel(opts.trace)
			if err != nil {
				return err
			}
			tracing.Select("syllabify").SetTraceLevel(level)
			tracing.Select("syllabify.languages").SetTraceLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := opts.loadInventory()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return syllabifyAll(cmd.OutOrStdout(), inv, args, opts.detail)
			}
			return syllabifyLines(cmd.OutOrStdout(), cmd.InOrStdin(), inv, opts.detail)
		},
	}
	root.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "language of transcriptions (default from $SYLLABIFY_LANG or locale)")
	root.PersistentFlags().StringVarP(&opts.inventory, "inventory", "i", "", "YAML file with phoneme inventory, overrides --lang")
	root.PersistentFlags().StringVar(&opts.trace, "trace", "error", "trace level: debug, info or error")
	root.Flags().BoolVarP(&opts.detail, "detail", "d", false, "print stress, onset, nucleus and coda of every syllable")

	root.AddCommand(inventoryCmd(opts))
	return root
}

// language returns the language to use, by precedence: flag, environment,
// user locale, default.
func (opts *options) language() string {
	if opts.lang != "" {
		return opts.lang
	}
	if lang := os.Getenv("SYLLABIFY_LANG"); lang != "" {
		return lang
	}
	if locale, err := jj.DetectIETF(); err == nil && locale != "" {
		if _, err := languages.Lookup(locale); err == nil {
			return locale
		}
	}
	return defaultLanguage
}

func (opts *options) loadInventory() (*syllabify.PhonemeInventory, error) {
	if opts.inventory == "" {
		return languages.Lookup(opts.language())
	}
	f, err := os.Open(opts.inventory)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if opts.lang != "" {
		return yamlinventory.LoadLanguage(opts.inventory, opts.lang, f)
	}
	return yamlinventory.LoadInventory(opts.inventory, f)
}

func syllabifyAll(w io.Writer, inv syllabify.Inventory, transcriptions []string, detail bool) error {
	for _, t := range transcriptions {
		if err := syllabifyOne(w, inv, t, detail); err != nil {
			return err
		}
	}
	return nil
}

func syllabifyLines(w io.Writer, r io.Reader, inv syllabify.Inventory, detail bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := syllabifyOne(w, inv, line, detail); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func syllabifyOne(w io.Writer, inv syllabify.Inventory, transcription string, detail bool) error {
	syllables, err := syllabify.Syllabify(inv, norm.NFC.String(transcription))
	if err != nil {
		return fmt.Errorf("%s: %w", transcription, err)
	}
	fmt.Fprintln(w, syllabify.Join(syllables))
	if !detail {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\t#\tstress\tonset\tnucleus\tcoda")
	for i, syl := range syllables {
		fmt.Fprintf(tw, "\t%d\t%s\t%s\t%s\t%s\n", i+1,
			syl.Stress().String(), syl.Onset(), syl.Nucleus(), syl.Coda())
	}
	return tw.Flush()
}

func traceLevel(l string) (tracing.TraceLevel, error) {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", l)
}
