package command

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// config holds flag values, overridable with DECINT_* environment
	// variables (e.g. DECINT_LOG_LEVEL=debug).
	config = viper.New()

	Root = &cobra.Command{
		Use:   "decint",
		Short: "decint evaluates arbitrary-precision decimal integer expressions.",
		Long: "`decint` is a command-line front end to the integer package.\n\n" +
			"It evaluates single operations on integers of any size, runs the reference\n" +
			"scenarios of the integer type, and converts integers to and from BSV streams.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(
				cmd.ErrOrStderr(),
				config.GetString("log-fmt"),
				config.GetString("log-level"),
			)
			if err != nil {
				return err
			}

			slog.SetDefault(logger)

			return nil
		},
	}
)

func registerFlags(fs *pflag.FlagSet) {
	fs.String("log-fmt", "text", "Log format: text, json or logfmt.")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error.")
}

func init() {
	registerFlags(Root.PersistentFlags())

	config.SetEnvPrefix("decint")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	if err := config.BindPFlags(Root.PersistentFlags()); err != nil {
		panic(err)
	}

	Root.AddCommand(Eval, Check, Encode, Decode)
}
