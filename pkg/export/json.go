package export

import (
	"encoding/json"
	"io"

	"github.com/seqsift/seqsift/pkg/record"
)

// jsonRecord is the serialized shape of one record in JSON exports.
type jsonRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Length      int    `json:"length"`
	Sequence    string `json:"sequence"`
}

func writeJSON(w io.Writer, rs []record.Record) error {
	out := make([]jsonRecord, len(rs))
	for i, r := range rs {
		out[i] = jsonRecord{
			ID:          r.ID,
			Description: r.Description,
			Length:      r.Len(),
			Sequence:    r.Sequence,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
