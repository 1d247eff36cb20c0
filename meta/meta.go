// Package meta compiles a wildcard pattern into a search engine.
//
// Compilation splits the pattern into segments, builds the segment automaton
// in the form selected by Config.Strategy and picks a prefilter. The
// resulting Engine is immutable and safe for concurrent use: every search
// borrows its own stream.Matcher from a pool.
//
// Example:
//
//	engine, err := meta.Compile([]byte("ab??aba"))
//	if err != nil {
//	    return err
//	}
//	anchors := engine.FindAll([]byte("ababacaba")) // [2]
package meta
