// Package services implements the driving ports.
//
// Building happens in three steps: FlattenGroup and BuildCharacterRecord
// normalise decoded entries, DatabaseBuilder joins them under a malformed
// entry policy, and CatalogService caches the result as a snapshot.
// Renderer turns a stroke recipe into a numbered SVG diagram.
package services
