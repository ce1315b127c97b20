// Package source holds the adapters that decode the kanjidic2 dictionary
// and the KanjiVG stroke atlas into raw domain entries.
//
// Each document is decoded once, fully, per call. Decoding streams one
// top-level entry at a time so the whole document tree is never held in
// memory alongside the decoded entries.
package source
