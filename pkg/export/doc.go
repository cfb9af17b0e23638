// Package export serializes sequence record collections to flat text
// files.
//
// An Exporter is bound to one output directory, created on first write.
// Formats are dispatched through a registry; the supported set is FASTA
// (wrapped sequence bodies), TSV (one row per record), JSON, and a
// human-readable report. Writers overwrite existing files and return the
// resolved output path.
package export
