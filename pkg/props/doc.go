// Package props models ELK layout properties and their key namespace.
//
// # Overview
//
// A [Properties] bag maps dotted option keys to a [Value], a closed variant
// of Bool, Int, Float, String and StringList. Keeping the value space closed
// lets normalization, merging and encoding handle every case explicitly.
//
// ELK identifies options by long-form keys such as
// "org.eclipse.elk.nodeLabels.placement". Users may write the short form
// ("nodeLabels.placement") or nest keys as maps:
//
//	nodeLabels:
//	  placement: [OUTSIDE, V_BOTTOM]
//
// [Flatten] turns nested maps into dotted keys, and [Normalize] rewrites
// short keys to their long form whenever the long form is a registered
// option. Long-form keys already present always win, and normalizing twice
// yields the same bag.
//
// # Registry
//
// The registry lists every option identifier accepted by elkjs together
// with its value [Kind] and the graph elements ([Target]) it applies to.
// [Lookup], [Known] and [UnknownKeys] query it.
//
// # Enum Sets
//
// Options such as nodeLabels.placement hold a set of enum constants. ELK
// expects them as a bracketed string ("[OUTSIDE,V_BOTTOM]"). [ParseEnumSet]
// reads either a list or that string form; [FormatEnumSet] writes it.
package props
