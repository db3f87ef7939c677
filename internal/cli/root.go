// Package cli implements the kctf-pow command line: solve, check, gen and ask.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dayanaadylkhanova/kctf-pow/pkg/pow"
)

// ErrVerificationFailed is returned by check and ask when the solution is
// well-formed but wrong.
var ErrVerificationFailed = errors.New("challenge verification failed")

// IO carries the streams the commands read from and write to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdIO() IO { return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr} }

// NewRootCmd builds the command tree. name is used in usage output.
func NewRootCmd(name string, stdio IO) *cobra.Command {
	root := &cobra.Command{
		Use:   name,
		Short: "Solve, check and generate kCTF proof-of-work challenges",
		Long:  "Solve, check and generate kCTF sloth proof-of-work challenges.\n\n" + usage(name),
		Args: func(cmd *cobra.Command, args []string) error {
			return usageError(name)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError(name)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdio.In)
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)

	root.AddCommand(
		&cobra.Command{
			Use:   "solve <challenge>",
			Short: "Solve a challenge and print the solution",
			Args:  oneArg(name),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := pow.Decode(args[0])
				if err != nil {
					return err
				}
				sol, err := c.SolveContext(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sol)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check <challenge>",
			Short: "Read a solution from stdin and check it against a challenge",
			Args:  oneArg(name),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := pow.Decode(args[0])
				if err != nil {
					return err
				}
				return checkFromInput(cmd, c)
			},
		},
		&cobra.Command{
			Use:   "gen <difficulty>",
			Short: "Generate a random challenge",
			Args:  oneArg(name),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := generate(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
				return nil
			},
		},
		&cobra.Command{
			Use:   "ask <difficulty>",
			Short: "Generate a challenge, then read and check a solution",
			Args:  oneArg(name),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := generate(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
				return checkFromInput(cmd, c)
			},
		},
	)
	return root
}

func usage(name string) string {
	return `Usage:
    To solve a challenge: ` + name + ` solve <challenge>
    To check a challenge: ` + name + ` check <challenge>
    To randomly generate a challenge: ` + name + ` gen <difficulty>
    To chain generation with checking: ` + name + ` ask <difficulty>`
}

func usageError(name string) error {
	return errors.New("could not parse arguments\n" + usage(name))
}

// oneArg replaces cobra's arity message with the usage text.
func oneArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usageError(name)
		}
		return nil
	}
}

func generate(arg string) (pow.Challenge, error) {
	d, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return pow.Challenge{}, errors.New("difficulty is not a valid 32-bit unsigned integer")
	}
	return pow.Generate(uint32(d))
}

func checkFromInput(cmd *cobra.Command, c pow.Challenge) error {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		fmt.Fprint(cmd.ErrOrStderr(), "Solution? ")
	}
	// EOF without input checks an empty line, which fails as a bad version.
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.New("could not read from stdin")
	}
	ok, err := c.Check(strings.TrimSpace(line))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "incorrect")
		return ErrVerificationFailed
	}
	fmt.Fprintln(cmd.OutOrStdout(), "correct")
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdio IO) int {
	name := "kctf-pow"
	rest := []string{}
	if len(args) > 0 {
		if args[0] != "" {
			name = filepath.Base(args[0])
		}
		rest = args[1:]
	}
	root := NewRootCmd(name, stdio)
	root.SetArgs(rest)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stdio.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}
