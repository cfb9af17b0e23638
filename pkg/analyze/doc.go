// Package analyze computes scalar metrics over sequence records and
// filters record collections by length predicates.
//
// Every operation is a pure function of its inputs: the package holds no
// configuration or hidden state, results are computed fresh on each call,
// and input collections are never mutated. All operations are safe to
// call repeatedly and concurrently.
//
// The Analyzer interface allows specialized variants to extend the basic
// per-record computation; ProteinAnalyzer embeds the default SeqAnalyzer
// and adds a molecular weight estimate.
package analyze
