// Package connectors provides implementations of the CorpusReader and
// CorpusWatcher interfaces for corpus sources. Each connector knows how to
// load the text files of one class directory from a specific source type,
// and how to report when those files change.
package connectors
