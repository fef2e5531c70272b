// Package store provides the small file-persistence helpers shared by the
// scaffolder and the local deployment tooling.
//
// Writes go through a temp file in the target directory followed by a
// rename, so a reader never observes a half-written .env or JSON document.
package store
