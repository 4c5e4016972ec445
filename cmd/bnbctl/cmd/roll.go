package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bnb-bot-discord/internal/services/damage"
)

func newRollCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "roll <actor-id> <formula>",
		Short:   "Roll a formula against an actor's roll data",
		Example: `  bnbctl roll 3f0c... "1d20 + @acc.mod"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := env.Provider.ActorService.GetRollData(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := env.Provider.Evaluator.Evaluate(cmd.Context(), args[1], data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", res.Formula, res.Total)
			return nil
		},
	}
}

func newMeleeCommand(env *Env) *cobra.Command {
	in := &damage.MeleeDamageInput{}
	var attack string

	cmd := &cobra.Command{
		Use:   "melee <actor-id>",
		Short: "Roll kinetic melee damage for an actor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ActorID = args[0]
			in.AttackType = damage.AttackType(attack)

			out, err := env.Provider.DamageService.RollMelee(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Message.Flavor)
			fmt.Fprint(cmd.OutOrStdout(), out.Message.Content)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&attack, "attack", string(damage.AttackTypeMelee), "attack type: melee, shooting or grenade")
	f.IntVar(&in.Hits, "hits", 0, "number of hits")
	f.IntVar(&in.Crits, "crits", 0, "number of crits")
	f.BoolVar(&in.PlusOneDice, "plus-one-dice", false, "roll the melee dice one extra time")
	f.BoolVar(&in.DoubleDamage, "double", false, "double the total damage")
	f.BoolVar(&in.Crit, "crit", false, "add a crit die")
	f.BoolVar(&in.CritHit, "crit-hit", false, "the attack roll was a natural 20")

	return cmd
}
