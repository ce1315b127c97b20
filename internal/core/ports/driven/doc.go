// Package driven declares what the core needs from infrastructure.
//
// DictionarySource and StrokeSource decode the kanjidic2 and KanjiVG
// documents into raw entries; each reports the location it reads from so
// the snapshot cache can detect changed inputs. ConfigStore holds flat
// dotted-key settings.
//
// SnapshotStore and StudyStore may be nil. Without a snapshot store every
// run rebuilds from the sources; without a study store the study commands
// report that the list is unavailable.
//
// Only the domain package may be imported from here.
package driven
