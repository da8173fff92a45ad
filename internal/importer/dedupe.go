package importer

import (
	"github.com/nowledge-app/chatwise-import/internal/mem"
)

// KnownIDs is the set of thread ids already present on the server.
// A failed listing yields an empty set, which simply means every record
// looks new.
type KnownIDs map[string]struct{}

func NewKnownIDs(threads []mem.RemoteThread) KnownIDs {
	ids := make(KnownIDs, len(threads))
	for _, t := range threads {
		ids[t.ID] = struct{}{}
	}
	return ids
}

func (k KnownIDs) Has(id string) bool {
	_, ok := k[id]
	return ok
}
