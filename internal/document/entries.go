package document

import (
	"github.com/google/uuid"

	"github.com/reco/reco-builder/internal/types"
)

// AssignEntryIDs gives every collection entry a stable unique id. The
// editor sends new entries without an id; those get a fresh one here on
// save. An id that already appeared earlier in the document is treated as
// a client copy-paste and replaced as well. Entries whose id is already
// unique keep it, so the client can refer to the same entry across saves.
func AssignEntryIDs(doc *types.ResumeDocument) {
	seen := make(map[string]bool)
	assign := func(id *string) {
		if *id == "" || seen[*id] {
			*id = uuid.NewString()
		}
		seen[*id] = true
	}

	for i := range doc.WorkExperience {
		assign(&doc.WorkExperience[i].ID)
	}
	for i := range doc.Education {
		assign(&doc.Education[i].ID)
	}
	for i := range doc.Projects {
		assign(&doc.Projects[i].ID)
	}
	for i := range doc.Certifications {
		assign(&doc.Certifications[i].ID)
	}
}
