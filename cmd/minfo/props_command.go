package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minfo/internal/metadata"
)

func newPropsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "props",
		Short:       "List known logical properties and their lookup sources",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			properties := metadata.Properties()

			if jsonOut {
				listing := make(map[string][]string, len(properties))
				for _, prop := range properties {
					listing[prop.String()] = metadata.Sources(prop)
				}
				return writeJSON(cmd, listing)
			}

			rows := make([][]string, 0, len(properties))
			for _, prop := range properties {
				rows = append(rows, []string{
					prop.String(),
					strings.Join(metadata.Sources(prop), ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"PROPERTY", "LOOKUP ORDER"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
