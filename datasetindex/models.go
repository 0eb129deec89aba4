package datasetindex

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dataset is a single record in the dataset index document. The numeric
// attributes are optional in the source document; a nil field means the
// attribute is absent, which is distinct from a recorded zero.
type Dataset struct {
	URL            string `json:"url"`
	NumNodes       *int64 `json:"num-nodes,omitempty"`
	NumEdges       *int64 `json:"num-edges,omitempty"`
	NumUniqueEdges *int64 `json:"num-unique-edges,omitempty"`
	MaxEdgeSize    *int64 `json:"max-edge-size,omitempty"`
}

// Index is the dataset index document: an ordered mapping from dataset name
// to its record. Key order follows the source document and is the
// presentation order for anything rendered from it. An Index is never
// mutated once decoded.
type Index struct {
	Datasets *orderedmap.OrderedMap[string, Dataset]
}

// UnmarshalJSON decodes the index document, preserving the key order of the
// top-level JSON object.
func (i *Index) UnmarshalJSON(b []byte) error {
	i.Datasets = orderedmap.New[string, Dataset]()
	return json.Unmarshal(b, i.Datasets)
}

// MarshalJSON encodes the index as a JSON object in document key order.
func (i Index) MarshalJSON() ([]byte, error) {
	if i.Datasets == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(i.Datasets)
}

// Len returns the number of datasets in the index.
func (i Index) Len() int {
	if i.Datasets == nil {
		return 0
	}
	return i.Datasets.Len()
}
