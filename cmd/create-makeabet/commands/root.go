package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"makeabet/internal/chain"
	"makeabet/internal/scaffold"
	"makeabet/internal/ui"
)

// env is what the commands touch outside of their flags. Tests replace it.
type env struct {
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	workDir   string
	terminal  bool
	prompter  ui.Prompter
	generator scaffold.Generator
}

func defaultEnv() *env {
	return &env{
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		terminal: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (e *env) styles() ui.Styles {
	if e.terminal {
		return ui.DefaultStyles()
	}
	return ui.PlainStyles()
}

type rootFlags struct {
	merchant       bool
	chain          string
	packageManager string
	yes            bool
	verbose        bool
}

// Execute runs the CLI against the process stdio.
func Execute() error {
	return newRootCmd(defaultEnv()).ExecuteContext(context.Background())
}

func newRootCmd(e *env) *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:          "create-makeabet [project-name]",
		Short:        "Scaffold a MakeABet prediction market monorepo",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := ui.Answers{
				TargetChain:    f.chain,
				PackageManager: scaffold.PackageManager(f.packageManager),
			}
			if len(args) == 1 {
				a.ProjectName = args[0]
			}
			if cmd.Flags().Changed("merchant") {
				m := f.merchant
				a.Merchant = &m
			}
			return runCreate(cmd.Context(), e, a, f)
		},
	}
	root.SetIn(e.in)
	root.SetOut(e.out)
	root.SetErr(e.errOut)

	root.Flags().BoolVarP(&f.merchant, "merchant", "m", false, "include the merchant portal module")
	root.Flags().StringVarP(&f.chain, "chain", "c", "", fmt.Sprintf("target chain (%v)", chain.ScaffoldTargetKeys()))
	root.Flags().StringVarP(&f.packageManager, "package-manager", "p", "", "package manager (pnpm, npm or yarn)")
	root.Flags().BoolVarP(&f.yes, "yes", "y", false, "accept defaults for anything not given")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log generator steps to stderr")

	root.AddCommand(syncEnvCmd(e), faucetCmd(e))
	return root
}

func runCreate(ctx context.Context, e *env, a ui.Answers, f rootFlags) error {
	styles := e.styles()
	prompter := e.prompter
	if prompter == nil {
		prompter = ui.Defaults{}
		if e.terminal && !f.yes {
			prompter = ui.Interactive{In: e.in, Out: e.out, Styles: styles}
		}
	}

	opts, err := prompter.Prompt(ctx, a)
	if errors.Is(err, ui.ErrCancelled) {
		fmt.Fprintln(e.out, styles.Warning.Render("Scaffold creation cancelled"))
		return nil
	}
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if f.verbose {
		log = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(e.errOut),
			zap.DebugLevel,
		))
	}

	gen := e.generator
	gen.WorkDir = e.workDir
	gen.Log = log

	spin := ui.NewSpinner(e.out, styles, e.terminal)
	spin.Start("Preparing MakeABet scaffold")
	if _, err := gen.Run(ctx, opts); err != nil {
		spin.Fail("Failed to create scaffold")
		return err
	}
	spin.Succeed("Scaffold ready")

	fmt.Fprint(e.out, ui.SuccessMessage(styles, opts))
	return nil
}
