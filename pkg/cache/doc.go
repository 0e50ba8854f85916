// Package cache stores layout results and rendered previews between runs.
//
// # Overview
//
// The [Cache] interface is a byte-oriented key/value store with per-entry
// TTLs. Three implementations ship with graphloom:
//
//   - [FileCache]: one JSON file per entry under a directory, used by the CLI
//   - [RedisCache]: a shared cache for `graphloom serve` deployments
//   - [NullCache]: never stores anything, used with --no-cache
//
// Keys are produced by a [Keyer] so that every caller hashes the same inputs
// the same way. [ScopedKeyer] prefixes every key, which keeps several tenants
// or profile stores apart on one Redis instance.
//
// # Usage
//
//	c, err := cache.NewFileCache(cache.DefaultDir())
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	key := cache.NewDefaultKeyer().LayoutKey(cache.Hash(doc), cache.LayoutKeyOpts{Mode: "node"})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
//
// # Retries
//
// [RetryWithBackoff] retries only errors wrapped with [Retryable], which lets
// callers such as the elkjs installer decide which failures are transient.
package cache
