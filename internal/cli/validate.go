package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/evn/internal/wire"
)

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [code...]",
		Short: "Check whether EVN codes are valid",
		Long: `Check the length, country code and check digit of an EVN.

Arguments are joined with spaces, so an unquoted formatted code works.
With --stdin, one code is read per line; blank lines and lines starting
with '#' are skipped. The command exits non-zero if any code is invalid.

Examples:
  evn validate 94 51 2150 054-6
  evn validate 945121500546
  evn validate --stdin < fleet.txt`,
		RunE: runValidate,
	}

	cmd.Flags().Bool("stdin", false, "Read one code per line from standard input")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	msgs := messages(cmd)

	var codes []string
	if fromStdin {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --stdin with code arguments")
		}
		var err error
		if codes, err = readCodes(cmd.InOrStdin()); err != nil {
			return err
		}
	} else if len(args) > 0 {
		codes = []string{strings.Join(args, " ")}
	}

	if len(codes) == 0 {
		return errors.New(msgs.EnterEVN)
	}

	return wire.EVNAdapterWithOutput(cmd.OutOrStdout(), msgs).Validate(cmd.Context(), codes)
}

// readCodes reads one code per line.
func readCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read codes: %w", err)
	}
	return codes, nil
}
