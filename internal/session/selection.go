package session

import (
	"encoding/json"

	"github.com/reviewdesk/admitctl/internal/domain"
)

// Storage keys for the selection. Id and metadata are always written and
// cleared together.
const (
	currentIDKey   = "session.current_id"
	currentMetaKey = "session.current_meta"
)

type metaSchema struct {
	Name   string `json:"name"`
	Campus string `json:"campus"`
	Year   int    `json:"year"`
}

func encodeMeta(meta domain.SessionMeta) (string, error) {
	data, err := json.Marshal(metaSchema{
		Name:   meta.Name,
		Campus: string(meta.Campus),
		Year:   meta.Year,
	})
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// decodeMeta returns false on any malformed input rather than an error; a
// corrupt snapshot degrades to "absent".
func decodeMeta(raw string) (domain.SessionMeta, bool) {
	var schema metaSchema
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		return domain.SessionMeta{}, false
	}

	return domain.SessionMeta{
		Name:   schema.Name,
		Campus: domain.Campus(schema.Campus),
		Year:   schema.Year,
	}, true
}
