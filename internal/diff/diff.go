// Package diff computes the data updates needed to bring a destination
// Secret in line with a source Secret.
package diff

import (
	"bytes"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	operatorerrors "github.com/bobbyrward/trade-secrets/internal/errors"
)

// ComputeUpdates returns the destination keys whose values must change, mapped
// to their new values. Values are compared byte for byte; a destination key
// that is absent always differs.
//
// Mappings are processed left to right. The first mapping whose source key is
// absent from source aborts the computation with a
// *operatorerrors.SourceFieldMissingError and no partial result. When several
// mappings target the same destination key, the last one wins.
//
// The returned map is never nil. Nil source or dest maps are treated as empty.
func ComputeUpdates(mappings []secretsv1alpha1.PatchCopyItem, source, dest map[string][]byte) (map[string][]byte, error) {
	updates := make(map[string][]byte, len(mappings))

	for _, m := range mappings {
		value, ok := source[m.Source]
		if !ok {
			return nil, &operatorerrors.SourceFieldMissingError{Key: m.Source}
		}

		current, exists := dest[m.Destination]
		if exists && bytes.Equal(current, value) {
			// An earlier mapping may have queued a different value for the
			// same key; the current one already matches, so drop it.
			delete(updates, m.Destination)
			continue
		}

		updates[m.Destination] = value
	}

	return updates, nil
}
