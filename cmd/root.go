package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gosh-shell/gosh/builtins"
	"github.com/gosh-shell/gosh/core/config"
	"github.com/gosh-shell/gosh/core/history"
	"github.com/gosh-shell/gosh/core/shell"
)

var (
	cfgPath     string
	commandFlag string
)

// rootCmd starts the interactive shell, or runs a single command line when
// -c is given.
var rootCmd = &cobra.Command{
	Use:   "gosh",
	Short: "An interactive command shell",
	Long: `An interactive command shell supporting builtin and external commands,
pipelines, I/O redirection and persistent history.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		shell.InitColor()

		fs := afero.NewOsFs()

		hist := history.New(fs)
		hist.SetFallbackPath(cfg.HistoryFile)
		hist.SetLimit(cfg.HistoryLimit)
		hist.Load()

		if commandFlag != "" {
			ex := &shell.Executor{
				FS:       fs,
				Registry: builtins.Registry{},
				History:  hist,
				Stdin:    os.Stdin,
				Stdout:   os.Stdout,
				Stderr:   os.Stderr,
			}
			ex.RunLine(commandFlag)
			if code, quit := ex.Quit(); quit {
				os.Exit(code)
			}
			os.Exit(ex.LastStatus())
		}

		sh, err := shell.New(shell.Options{
			FS:           fs,
			Registry:     builtins.Registry{},
			History:      hist,
			Prompt:       cfg.Prompt,
			BuiltinNames: builtins.Names(),
		})
		if err != nil {
			return err
		}

		os.Exit(sh.Run())
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.Flags().StringVarP(&commandFlag, "command", "c", "", "run a single command line and exit")
}
