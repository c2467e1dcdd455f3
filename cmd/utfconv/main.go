// Command utfconv converts text between UTF-8, UTF-16 and UTF-32.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/textconv/canon"
	"github.com/wippyai/textconv/host"
	"github.com/wippyai/textconv/utf"
)

var (
	verbose    bool
	forbidBOM  bool
	strict     bool
	rootLogger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "utfconv",
		Short:         "Convert text between Unicode encoding forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = rootLogger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log conversion failures to stderr")
	pf.BoolVar(&forbidBOM, "forbid-bom", false, "Fail when the input starts with a byte order mark")
	pf.BoolVar(&strict, "strict", false, "Fail on malformed input instead of substituting U+FFFD")

	root.AddCommand(newConvertCmd(), newDetectCmd(), newInspectCmd(), newRunCmd())
	return root
}

func setupLogging(verbose bool) error {
	if !verbose {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	rootLogger = l
	canon.SetLogger(l.Named("canon"))
	host.SetLogger(l.Named("host"))
	return nil
}

func flags() utf.Flags {
	var f utf.Flags
	if forbidBOM {
		f |= utf.ForbidBOM
	}
	if strict {
		f |= utf.ErrorOnInvalid
	}
	return f
}

// formValue lets a utf.Form be set from a flag.
type formValue utf.Form

var _ pflag.Value = (*formValue)(nil)

func (v *formValue) String() string { return utf.Form(*v).String() }

func (v *formValue) Set(s string) error {
	f, err := utf.ParseForm(s)
	if err != nil {
		return err
	}
	*v = formValue(f)
	return nil
}

func (v *formValue) Type() string { return "form" }

func formFlag(fs *pflag.FlagSet, p *utf.Form, name, short string, usage string) {
	fs.VarP((*formValue)(p), name, short, usage)
}
