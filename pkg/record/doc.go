// Package record defines the sequence record value type shared by the
// seqsift fetch, analysis, and export packages.
//
// A Record carries an identifier, a free-text description, and the raw
// sequence string. Conversions to and from biogo linear sequences live
// here so that the rest of the codebase never handles biogo types
// directly.
package record
