// Package textutil provides the text-processing primitives used across the
// document pipeline: normalization, HTML stripping, entity pattern
// extraction (dates, monetary amounts, tax IDs, phones, postal codes,
// emails), Jaccard similarity, chunking, keyword frequency ranking, and a
// handful of display helpers.
//
// Every function is pure and safe for concurrent use. The only package-level
// state is the read-only Portuguese stopword table consulted by Keywords.
//
// Extractors report matched substrings as-is. They do not validate what they
// match (a date like 99/99/9999 is reported, tax IDs are not checksummed);
// callers needing semantic guarantees should use the validate package.
package textutil
