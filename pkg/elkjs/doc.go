// Package elkjs runs the elkjs layout engine over a canvas document.
//
// graphloom does not compute coordinates itself. A [Runner] pipes the ELK
// JSON document into a small node script that calls elkjs and returns the
// positioned graph. Keys that elkjs uses internally (those starting with
// "$") are removed from the result with [StripInternal].
//
// # Modes
//
//   - node: elkjs must already be resolvable by the local node runtime
//   - npm: elkjs is installed on first use into a private workspace under
//     the graphloom cache directory and pinned to [Version]
//   - npx: alias of npm
//
// # Usage
//
//	r := elkjs.NewRunner(elkjs.Options{Mode: elkjs.ModeNPM})
//	positioned, err := r.Layout(ctx, canvas)
package elkjs
