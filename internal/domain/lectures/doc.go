// Package lectures contains the lecture aggregate: source folders discovered
// on disk, catalog metadata, folder-name conventions and the service and
// repository contracts built around them.
package lectures
