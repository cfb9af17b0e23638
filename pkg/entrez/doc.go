// Package entrez wraps the NCBI Entrez E-utilities for searching and
// fetching sequence records.
//
// All network and protocol concerns are delegated to
// github.com/biogo/ncbi/entrez, including the request rate the service
// mandates. This package validates parameters, converts fetched FASTA
// payloads into record values, and surfaces collaborator failures as
// package-level errors.
//
// A Config carries the contact identity (validated to contain "@") and
// an optional API key; both are sent with every request.
package entrez
