// Package store persists Leitner boxes to the local filesystem.
//
// A box is saved as a single snapshot file whose format follows the file
// extension: ".json" for JSON, ".yaml" or ".yml" for YAML. The snapshot
// layout is the one leitner.Box marshals to.
//
// # Usage
//
//	s, err := store.NewFile[string]("deck.yaml", logger)
//	box, err := s.Load(ctx)
//	box = box.AddToUnknown("der Hund")
//	err = s.Save(ctx, box)
package store
