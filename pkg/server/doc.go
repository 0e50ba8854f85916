// Package server exposes the graphloom pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz                       liveness and build info
//	GET  /v1/options?q=<filter>         registered ELK layout options
//	GET  /v1/settings/sample            built-in sample settings
//	POST /v1/canvas                     build (and optionally lay out) a graph
//	POST /v1/preview                    Graphviz preview of a graph
//	GET  /v1/profiles                   stored profile versions
//	GET  /v1/profiles/{id}              latest version of a profile
//	GET  /v1/profiles/{id}/{version}    one profile version
//	POST /v1/profiles                   store a profile bundle
//
// Build requests carry the graph plus optional settings, a profile bundle
// or a stored profile reference, theme metrics and flags:
//
//	{
//	  "graph": {"nodes": ["A", "B"], "edges": ["A:eth0 -> B:eth1"]},
//	  "profileId": "network-core",
//	  "theme": {"font_size_px": 12},
//	  "layout": true
//	}
//
// Errors are returned as {"error": {"code": "...", "message": "..."}} with
// a status derived from the error code.
package server
