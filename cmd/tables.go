package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gencode-dev/gocodon/pkg/gencode"
)

func init() {
	rootCmd.AddCommand(tablesCmd)
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "list the supported NCBI genetic code tables",
	Long:  `list the supported NCBI genetic code tables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range gencode.IDs() {
			table, err := gencode.Lookup(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tstarts: %s\n",
				table.ID, table.Name, strings.Join(table.StartCodons(), ","))
		}
		return nil
	},
}
