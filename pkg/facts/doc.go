// Package facts defines the fact model consumed by the rule engine.
//
// A fact is a named observation about the current state of the home
// (sensor reading, occupancy, window state). Facts are loosely typed at
// the edges (JSON bodies, YAML files, CLI flags) but carried internally
// as a tagged Value so that comparisons are explicit per kind and type
// mismatches surface as errors instead of silent coercion.
package facts
