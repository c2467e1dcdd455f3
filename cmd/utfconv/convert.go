package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/textconv/stream"
	"github.com/wippyai/textconv/utf"
)

func newConvertCmd() *cobra.Command {
	var (
		from, to = utf.FormUTF8, utf.FormUTF8
		chunk    int
	)
	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a file or stdin from one form to another",
		Long: `Convert reads input in the source form and writes it in the target form.
Forms: utf-8, utf-16, utf-16le, utf-16be, utf-32, utf-32le, utf-32be.
The generic utf-16 and utf-32 forms read a byte order mark when present.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := from, to
			if chunk <= 0 {
				return fmt.Errorf("chunk size must be positive, got %d", chunk)
			}

			in, closeIn, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()

			run := func(out io.Writer) error {
				n, err := convertStream(out, in, src, dst, flags(), chunk)
				if err != nil {
					rootLogger.Error("conversion failed",
						zap.Stringer("from", src),
						zap.Stringer("to", dst),
						zap.Int64("bytes_written", n),
						zap.Error(err))
					return err
				}
				rootLogger.Debug("conversion done",
					zap.Stringer("from", src),
					zap.Stringer("to", dst),
					zap.Int64("bytes_written", n))
				return nil
			}
			if len(args) < 2 {
				return run(cmd.OutOrStdout())
			}
			return writeOutput(func() (io.WriteCloser, error) { return os.Create(args[1]) }, run)
		},
	}
	formFlag(cmd.Flags(), &from, "from", "f", "Source form")
	formFlag(cmd.Flags(), &to, "to", "t", "Target form")
	cmd.Flags().IntVar(&chunk, "chunk", 32*1024, "Read buffer size in bytes")
	return cmd
}

// writeOutput runs fn against a freshly created output and closes it. A failed
// Close is reported when fn itself succeeded.
func writeOutput(create func() (io.WriteCloser, error), fn func(io.Writer) error) (err error) {
	w, err := create()
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return fn(w)
}

func openInput(args []string, stdin io.Reader) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func convertStream(w io.Writer, r io.Reader, from, to utf.Form, fl utf.Flags, chunk int) (int64, error) {
	bw := bufio.NewWriterSize(w, chunk)
	n, err := io.CopyBuffer(bw, stream.NewReader(bufio.NewReaderSize(r, chunk), from, to, fl), make([]byte, chunk))
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}
