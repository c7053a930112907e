package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gencode-dev/gocodon/pkg/fasta"
	"github.com/gencode-dev/gocodon/pkg/gfio"
)

var translateInfile string
var translateOutfile string
var translateTable int
var translateStrict bool
var translateFrames string
var translateWrap int

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateInfile, "fasta-in", "i", "stdin", "fasta file of DNA records to translate")
	translateCmd.Flags().StringVarP(&translateOutfile, "fasta-out", "o", "stdout", "fasta file of protein records to write")
	translateCmd.Flags().IntVarP(&translateTable, "table", "t", 1, "NCBI genetic code table id")
	translateCmd.Flags().BoolVarP(&translateStrict, "strict", "", false, "fail on codons whose amino acid cannot be fully resolved")
	translateCmd.Flags().StringVarP(&translateFrames, "frames", "f", "0", "frames to translate: 0, 1 or 2 (forward offset), self, or all")
	translateCmd.Flags().IntVarP(&translateWrap, "wrap", "w", 80, "wrap output sequence lines to this many characters (0 = no wrap)")

	translateCmd.Flags().SortFlags = false
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "translate DNA records to protein records",
	Long: `translate DNA records to protein records

Codons containing IUPAC ambiguity codes are resolved to a single amino
acid when every nucleotide they can stand for encodes the same one, to
the standardized amino acid ambiguity codes B, Z and J where those apply,
and to X otherwise. With --strict, any codon that cannot be fully
resolved is an error instead.`,
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

		return fasta.TranslateRecords(in, out, translateTable, translateStrict, translateFrames, translateWrap)
	},
}
