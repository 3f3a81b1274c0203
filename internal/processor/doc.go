// Package processor contains the run logic of hanyu. It builds the
// annotation pipeline from the configuration, reads input texts from files,
// batch lists or web articles, writes the annotated study documents and
// prints the vocabulary summary. This package serves as the main
// coordinator between all other components.
package processor
