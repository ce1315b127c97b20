// Package file stores user settings as nested TOML, ~/.kanji/config.toml by
// default. Dotted keys such as "search.match" map to TOML tables.
package file
