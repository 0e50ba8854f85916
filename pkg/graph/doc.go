// Package graph defines the input graph graphloom builds canvases from and
// the boundary that turns loosely shaped documents into it.
//
// # Input Shape
//
// A graph is a list of nodes and a list of edges. Nodes may nest their own
// nodes and edges, which makes them subgraphs:
//
//	nodes:
//	  - Internet
//	  - name: Site A
//	    type: datacenter
//	    nodes: [Core Router 1, Core Router 2]
//	    links:
//	      - Core Router 1:xe-0/0/0 -> Core Router 2:xe-0/0/0
//	links:
//	  - Internet -> Site A
//
// [FromMap] accepts the short forms people write by hand:
//
//   - a bare string node is {"name": <string>}
//   - a bare string edge is link shorthand "Source[:Port] -> Target[:Port]"
//   - node fields: name or l, type or t, id, nodes, edges or links,
//     properties
//   - edge fields: id, name, label or l, type or t, from or a, to or b,
//     properties
//   - properties maps may be nested; they are flattened to dotted keys
//
// After FromMap every value is in its long form, so the builder never sees
// the short forms.
//
// # Validation
//
// [Validate] enforces the naming limits edges rely on: node names are 1 to
// 20 characters and cannot contain ':', port names 1 to 15 characters
// without ':', edge names and labels at most 40 characters, nesting at most
// [MaxDepth] levels. [ReadFile] and [Parse] run FromMap and Validate.
package graph
