package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gencode-dev/gocodon/pkg/fasta"
	"github.com/gencode-dev/gocodon/pkg/gfio"
)

var revcompInfile string
var revcompOutfile string
var revcompWrap int

func init() {
	rootCmd.AddCommand(revcompCmd)

	revcompCmd.Flags().StringVarP(&revcompInfile, "fasta-in", "i", "stdin", "fasta file of DNA records to reverse complement")
	revcompCmd.Flags().StringVarP(&revcompOutfile, "fasta-out", "o", "stdout", "fasta file to write")
	revcompCmd.Flags().IntVarP(&revcompWrap, "wrap", "w", 80, "wrap output sequence lines to this many characters (0 = no wrap)")

	revcompCmd.Flags().SortFlags = false
}

var revcompCmd = &cobra.Command{
	Use:   "revcomp",
	Short: "reverse complement DNA records",
	Long:  `reverse complement DNA records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := gfio.OpenIn(*cmd.Flag("fasta-in"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := gfio.OpenOut(*cmd.Flag("fasta-out"))
		if err != nil {
			return err
		}
		defer out.Close()

		return fasta.ReverseComplementRecords(in, out, revcompWrap)
	},
}
