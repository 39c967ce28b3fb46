package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <build-id>",
		Short: "Print the stored record of a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			record, err := c.app.BuildRecord(configPath, args[0])
			if err != nil {
				return err
			}
			if record == nil {
				return zerr.With(zerr.New("build record not found"), "build_id", args[0])
			}
			data, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return zerr.Wrap(err, "failed to encode build record")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
