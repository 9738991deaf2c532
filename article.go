package easynews

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Article represents one entry of the news index.
type Article struct {
	Priority        int    `json:"top_priority_number"`
	PrearrangedTime string `json:"news_prearranged_time"`
	ID              string `json:"news_id"`
	TitleWithRuby   string `json:"title_with_ruby"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a == nil {
		return Errorf(EINVALID, "article required")
	}
	if a.ID == "" {
		return Errorf(EINVALID, "article news ID required")
	}
	if a.Priority <= 0 {
		return Errorf(EINVALID, "article %s: priority must be positive", a.ID)
	}
	return nil
}

// UnmarshalJSON decodes an index entry. The priority is accepted both as a
// JSON number and as a quoted number.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw struct {
		Priority        json.RawMessage `json:"top_priority_number"`
		PrearrangedTime string          `json:"news_prearranged_time"`
		ID              string          `json:"news_id"`
		TitleWithRuby   string          `json:"title_with_ruby"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	priority, err := parsePriority(raw.Priority)
	if err != nil {
		return Errorf(EINVALID, "article %s: invalid top_priority_number %s", raw.ID, raw.Priority)
	}

	*a = Article{
		Priority:        priority,
		PrearrangedTime: raw.PrearrangedTime,
		ID:              raw.ID,
		TitleWithRuby:   raw.TitleWithRuby,
	}
	return nil
}

func parsePriority(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.Atoi(s)
	}
	var n int
	err := json.Unmarshal(raw, &n)
	return n, err
}
