// Package mmfile provides platform-specific helpers for reading scene files.
//
// On unix systems Map memory-maps the file read-only; elsewhere it reads the
// whole file. Either way the caller must call the returned release function
// once it is done with the data and must not retain the slice afterwards.
package mmfile
