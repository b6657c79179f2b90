// Package filesystem writes corpus output trees and clean manifests
// to local disk.
//
// Layout under an output root:
//
//	<root>/test/<filename>
//	<root>/train/<filename>
//	<root>/test_clean.csv
//	<root>/train_clean.csv
//
// Manifest rows have the form "<filename>, <label>".
package filesystem
