package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wippyai/textconv/utf"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [input]",
		Short: "Report the byte order mark at the start of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()

			head := make([]byte, 4)
			n, err := io.ReadFull(in, head)
			if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeBOM(head[:n]))
			return nil
		},
	}
}

func describeBOM(head []byte) string {
	f, n, ok := utf.DetectBOM(head)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%s (%d bytes)", f, n)
}
