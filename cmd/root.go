package cmd

import (
	"github.com/spf13/cobra"

	"fastcat.org/go/catr/config"
	"fastcat.org/go/catr/instance"
	"fastcat.org/go/catr/internal"
	"fastcat.org/go/catr/textedit"
)

func Root() *cobra.Command {
	vi := config.New()
	root := &cobra.Command{
		Use:           instance.AppName() + " [FILE]...",
		Short:         "concatenate files and print on the standard output",
		Long:          instance.AppName() + " - concatenate FILE(s) to standard output.\n\nWith no FILE, or when FILE is -, read standard input.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			internal.LockCustomizations()
			opts, err := config.Load(vi, args)
			if err != nil {
				return err
			}
			log, err := internal.NewLogger(cmd.ErrOrStderr(), opts.LogLevel)
			if err != nil {
				return err
			}
			stdin := cmd.InOrStdin()
			srcs := make([]textedit.Source, 0, len(opts.Files))
			for _, name := range opts.Files {
				srcs = append(srcs, textedit.Open(name, stdin))
			}
			_, err = textedit.New(instance.AppName(), opts.Pipeline(), log).
				Run(srcs, cmd.OutOrStdout())
			return err
		},
	}

	f := root.Flags()
	f.BoolP(config.KeyNumber, "n", false, "number all output lines")
	f.BoolP(config.KeyNumberNonBlank, "b", false, "number nonempty output lines, overrides -n")
	f.BoolP(config.KeyShowEnds, "E", false, "display $ at end of each line")
	f.BoolP(config.KeyShowTabs, "T", false, "display TAB characters as ^I")
	f.BoolP(config.KeySqueezeBlank, "s", false, "suppress repeated empty output lines")
	f.String(config.KeyLogLevel, config.DefaultLogLevel, "diagnostic log level (trace, debug, info, warn, error, disabled)")
	// only fails on a nil flag set
	if err := config.Bind(vi, f); err != nil {
		panic(err)
	}
	return root
}
