package award

// Document is a file reference attached to an award. Identity is the ID; on
// reconciliation the title, description and document type of a matched stored
// document are overwritten from the request while its ID and related lots are
// retained.
type Document struct {
	ID           string
	DocumentType string
	Title        string
	Description  string
	RelatedLots  []string
}

// mergeDocuments reconciles the stored document set with the documents of an
// evaluation request, keyed by document id. The merge is an explicit
// deterministic union: request documents first in request order (matched ids
// keep the stored id and related lots, everything else comes from the
// request; unmatched ids are appended as new), then stored-only documents in
// stored order. An empty request keeps the stored set; an empty stored set
// adopts the request wholesale. Duplicate ids inside the request collapse to
// their first occurrence so an id is never duplicated in the result.
func mergeDocuments(stored, incoming []Document) []Document {
	if len(incoming) == 0 {
		return stored
	}

	if len(stored) == 0 {
		merged := make([]Document, 0, len(incoming))
		seen := make(map[string]struct{}, len(incoming))
		for _, doc := range incoming {
			if _, ok := seen[doc.ID]; ok {
				continue
			}
			seen[doc.ID] = struct{}{}
			merged = append(merged, doc)
		}
		return merged
	}

	storedIndex := make(map[string]int, len(stored))
	for i, doc := range stored {
		storedIndex[doc.ID] = i
	}

	merged := make([]Document, 0, len(stored)+len(incoming))
	seen := make(map[string]struct{}, len(incoming))

	for _, in := range incoming {
		if _, ok := seen[in.ID]; ok {
			continue
		}
		seen[in.ID] = struct{}{}

		if i, ok := storedIndex[in.ID]; ok {
			doc := stored[i]
			doc.DocumentType = in.DocumentType
			doc.Title = in.Title
			doc.Description = in.Description
			merged = append(merged, doc)
			continue
		}
		merged = append(merged, in)
	}

	for _, doc := range stored {
		if _, ok := seen[doc.ID]; !ok {
			merged = append(merged, doc)
		}
	}

	return merged
}
