package entrez

import "fmt"

// GeneQuery builds the canonical gene-by-organism query expression:
//
//	GeneQuery("TP53", "Homo sapiens") == `TP53[Gene name] AND "Homo sapiens"[Organism]`
func GeneQuery(gene, organism string) string {
	return fmt.Sprintf("%s[Gene name] AND %q[Organism]", gene, organism)
}
