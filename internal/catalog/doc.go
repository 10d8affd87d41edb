// Package catalog exposes the fixed profession catalog.
//
// The catalog maps each profession a user can register under to the ordered
// list of technologies offered for it. It is parsed once from an embedded YAML
// document and never changes at runtime; every accessor returns copies.
package catalog
