package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

func newSettingsCommand(env *Env) *cobra.Command {
	var realm string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and change realm settings",
	}
	cmd.PersistentFlags().StringVar(&realm, "realm", "", "realm ID")
	_ = cmd.MarkPersistentFlagRequired("realm")

	get := &cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := env.Provider.Settings.Get(cmd.Context(), realm)
			if err != nil {
				return err
			}

			keys := entities.SettingKeys()
			if len(args) == 1 {
				keys = args
			}
			for _, key := range keys {
				v, err := ws.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", key, v)
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return dnderr.InvalidArgumentf("setting value must be true or false, got %q", args[1])
			}

			if err := env.Provider.Settings.Set(cmd.Context(), realm, args[0], value); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", args[0], value)
			return nil
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
