package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

func newActorCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actor",
		Short: "Manage actors",
	}

	cmd.AddCommand(
		newActorImportCommand(env),
		newActorShowCommand(env),
		newActorListCommand(env),
		newActorMigrateCommand(env),
		newActorDeleteCommand(env),
	)

	return cmd
}

func newActorImportCommand(env *Env) *cobra.Command {
	var realm, owner string
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import an actor document",
		Long: `Import reads an actor from a YAML (or JSON) document and stores it.
Actors written by older versions are migrated the next time they are read.
With --replace the document overwrites the stored actor with the same ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return dnderr.Wrapf(err, "failed to read %s", args[0])
			}

			var a entities.Actor
			if err := yaml.Unmarshal(raw, &a); err != nil {
				return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse actor document")
			}
			if realm != "" {
				a.RealmID = realm
			}
			if owner != "" {
				a.OwnerID = owner
			}

			verb := "imported"
			store := env.Provider.ActorService.ImportActor
			if replace {
				verb = "replaced"
				store = env.Provider.ActorService.ReplaceActor
			}

			stored, err := store(cmd.Context(), &a)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) into realm %s\n", verb, stored.ID, stored.Name, stored.RealmID)
			return nil
		},
	}

	cmd.Flags().StringVar(&realm, "realm", "", "override the realm ID in the document")
	cmd.Flags().StringVar(&owner, "owner", "", "override the owner ID in the document")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite an existing actor instead of failing")

	return cmd
}

func newActorShowCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a prepared actor as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.Provider.ActorService.GetActor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, a)
		},
	}
}

func newActorListCommand(env *Env) *cobra.Command {
	var realm string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the actors of a realm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := env.Provider.ActorService.ListActors(cmd.Context(), realm)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tOWNER")
			for _, a := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Type, a.OwnerID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&realm, "realm", "", "realm ID")
	_ = cmd.MarkFlagRequired("realm")

	return cmd
}

func newActorMigrateCommand(env *Env) *cobra.Command {
	var realm string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Prepare every actor of a realm and persist data migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := env.Provider.ActorService.MigrateRealm(cmd.Context(), realm)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %d actor(s) in realm %s\n", n, realm)
			return nil
		},
	}

	cmd.Flags().StringVar(&realm, "realm", "", "realm ID")
	_ = cmd.MarkFlagRequired("realm")

	return cmd
}

func newActorDeleteCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Provider.ActorService.DeleteActor(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return dnderr.Wrap(err, "failed to encode output")
	}
	return nil
}
