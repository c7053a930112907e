package gencode

// Genetic code data per the NCBI specification:
// https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi
//
// Every table is stored as its difference from the standard code, the way
// NCBI documents them. Tables 7 and 8 are the deleted NCBI entries that
// alias tables 4 and 1.

var standard = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

var diffs = map[int]map[string]byte{
	1:  {},
	2:  {"AGA": '*', "AGG": '*', "ATA": 'M', "TGA": 'W'},
	3:  {"ATA": 'M', "CTT": 'T', "CTC": 'T', "CTA": 'T', "CTG": 'T', "TGA": 'W'},
	4:  {"TGA": 'W'},
	5:  {"AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'},
	6:  {"TAA": 'Q', "TAG": 'Q'},
	9:  {"AAA": 'N', "AGA": 'S', "AGG": 'S', "TGA": 'W'},
	10: {"TGA": 'C'},
	// table 11 shares the standard codon assignments, it differs only
	// in its start codons
	11: {},
	12: {"CTG": 'S'},
	13: {"AGA": 'G', "AGG": 'G', "ATA": 'M', "TGA": 'W'},
	14: {"AAA": 'N', "AGA": 'S', "AGG": 'S', "TAA": 'Y', "TGA": 'W'},
	15: {"TAG": 'Q'},
	16: {"TAG": 'L'},
	21: {"AAA": 'N', "AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'},
	22: {"TCA": '*', "TAG": 'L'},
	23: {"TTA": '*'},
	24: {"AGA": 'S', "AGG": 'K', "TGA": 'W'},
	25: {"TGA": 'G'},
	26: {"CTG": 'A'},
	27: {"TAA": 'Q', "TAG": 'Q', "TGA": 'W'},
	28: {"TAA": 'Q', "TAG": 'Q', "TGA": 'W'},
	29: {"TAA": 'Y', "TAG": 'Y'},
	30: {"TAA": 'E', "TAG": 'E'},
	31: {"TAA": 'E', "TAG": 'E', "TGA": 'W'},
	32: {"TAG": 'W'},
	33: {"TAA": 'Y', "AGA": 'S', "AGG": 'K', "TGA": 'W'},
}

// deleted NCBI ids that resolve to another table's codon assignments
var aliases = map[int]int{
	7: 4,
	8: 1,
}

var names = map[int]string{
	1:  "Standard",
	2:  "Vertebrate Mitochondrial",
	3:  "Yeast Mitochondrial",
	4:  "Mold, Protozoan, and Coelenterate Mitochondrial and Mycoplasma/Spiroplasma",
	5:  "Invertebrate Mitochondrial",
	6:  "Ciliate, Dasycladacean and Hexamita Nuclear",
	7:  "Kinetoplast (deleted, identical to table 4)",
	8:  "Deleted (identical to table 1)",
	9:  "Echinoderm and Flatworm Mitochondrial",
	10: "Euplotid Nuclear",
	11: "Bacterial, Archaeal and Plant Plastid",
	12: "Alternative Yeast Nuclear",
	13: "Ascidian Mitochondrial",
	14: "Alternative Flatworm Mitochondrial",
	15: "Blepharisma Nuclear",
	16: "Chlorophycean Mitochondrial",
	21: "Trematode Mitochondrial",
	22: "Scenedesmus obliquus Mitochondrial",
	23: "Thraustochytrium Mitochondrial",
	24: "Rhabdopleuridae Mitochondrial",
	25: "Candidate Division SR1 and Gracilibacteria",
	26: "Pachysolen tannophilus Nuclear",
	27: "Karyorelict Nuclear",
	28: "Condylostoma Nuclear",
	29: "Mesodinium Nuclear",
	30: "Peritrich Nuclear",
	31: "Blastocrithidia Nuclear",
	32: "Balanophoraceae Plastid",
	33: "Cephalodiscidae Mitochondrial",
}

var startCodons = map[int][]string{
	1:  {"TTG", "CTG", "ATG"},
	2:  {"ATT", "ATC", "ATA", "ATG", "GTG"},
	3:  {"ATA", "ATG", "GTG"},
	4:  {"TTA", "TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"},
	5:  {"TTG", "ATT", "ATC", "ATA", "ATG", "GTG"},
	6:  {"ATG"},
	7:  {"TTA", "TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"},
	8:  {"TTG", "CTG", "ATG"},
	9:  {"ATG", "GTG"},
	10: {"ATG"},
	11: {"TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"},
	12: {"CTG", "ATG"},
	13: {"TTG", "ATA", "ATG", "GTG"},
	14: {"ATG"},
	15: {"ATG"},
	16: {"ATG"},
	21: {"ATG", "GTG"},
	22: {"ATG"},
	23: {"ATT", "ATG", "GTG"},
	24: {"TTG", "CTG", "ATG", "GTG"},
	25: {"TTG", "ATG", "GTG"},
	26: {"CTG", "ATG"},
	27: {"ATG"},
	28: {"ATG"},
	29: {"ATG"},
	30: {"ATG"},
	31: {"ATG"},
	32: {"TTG", "CTG", "ATG", "GTG"},
	33: {"TTG", "CTG", "ATG", "GTG"},
}
