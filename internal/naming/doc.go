// Package naming builds the target file names for a run, recognizes names
// produced by an earlier run, and tracks the targets claimed within a run.
//
// A target name has the shape
//
//	<dirBase>_<token><suffix><ext>
//
// where dirBase is the base name of the directory being processed, token
// comes from the sequence package, suffix is the caller's literal suffix and
// ext is the original extension including its dot.
package naming
