// Package ident maps free-form labels to canonical identifiers.
//
// Every id in a canvas document (nodes, ports, edges) is produced by
// [Sanitize], which is total and idempotent: any string yields a non-empty
// token matching [a-z0-9_]+, and sanitizing a token again returns it
// unchanged.
//
// # Aliases
//
// [AliasCandidates] lets users reference nodes loosely. "Core Router 1"
// registers as core_router_1 and also answers to core_1, since generic role
// nouns (router, switch, node, host, device) are dropped from the alias.
//
// # Endpoints
//
// Edge endpoints use the "node:port" grammar. [SplitEndpoint] splits on the
// first colon only, and [ParseLinkShorthand] accepts the compact
// "A:eth0 -> B:eth1" link form.
package ident
