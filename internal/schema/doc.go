// Package schema validates Galaxy UI JSON documents (components.json and
// registry.json) against JSON Schemas embedded in the binary, collecting every
// violation instead of stopping at the first one.
package schema
