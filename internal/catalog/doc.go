// Package catalog discovers the Skeleton app templates a project can start
// from. A catalog is any fs.FS whose immediate subdirectories are templates,
// each carrying a meta.json. The default catalog is embedded in the binary;
// an on-disk directory can replace it.
package catalog
