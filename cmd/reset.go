package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all recorded rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return errors.New("refusing to delete history without --yes")
			}

			rt, err := setup(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()

			n := rt.history.Len()
			if err := rt.history.Reset(cmd.Context()); err != nil {
				return err
			}
			rt.logger.Info("history reset")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d recorded rounds.\n", n)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm deletion")
	return cmd
}
