// Package profile resolves versioned settings bundles and stores them.
//
// A profile bundle pins a settings document to an id and version so that
// several teams can build canvases against the same defaults:
//
//	{
//	  "profileId": "network-core",
//	  "profileVersion": 3,
//	  "checksum": "9f2c...",
//	  "elkSettings": { "layout_options": { ... }, "node_defaults": { ... } }
//	}
//
// [Resolve] checks the required fields and parses elkSettings into
// [settings.Settings]. [BuildCanvas] resolves a bundle and builds a graph
// with it in one step.
//
// Bundles are kept in a [Store]. [FileStore] writes one JSON file per
// version under a directory; [MongoStore] keeps them in a MongoDB
// collection for `graphloom serve` deployments. Version 0 asks either store
// for the latest version of a profile.
package profile
