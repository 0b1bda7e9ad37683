// Package catalog lists the speedrun categories a splits file can be
// generated for and serves each category's starting configuration.
//
// A catalog is two kinds of static asset inside an fs.FS:
//
//   - a directory file grouping categories under headings, e.g.
//     {"Main Categories": [{"fileName": "4ms", "displayName": "4 Mask Shards"}]}
//   - one configuration template per category at <categories>/<fileName>.json
//
// Heading order in the directory file is kept as written.
package catalog
