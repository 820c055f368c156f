package match

import (
	"encoding/json"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// DefaultLimit is the number of matches returned when no count is given.
const DefaultLimit = 5

var (
	ErrMatchFileMissing   = errors.New("match file missing")
	ErrMatchFileMalformed = errors.New("match file malformed")
)

// Match is one played fixture kept exactly as stored in the league file.
type Match struct {
	raw json.RawMessage
}

func New(raw []byte) Match {
	return Match{raw: append(json.RawMessage(nil), raw...)}
}

func (m Match) Raw() json.RawMessage {
	return m.raw
}

func (m Match) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

func (m *Match) UnmarshalJSON(data []byte) error {
	m.raw = append(m.raw[:0], data...)
	return nil
}

// Summary is a read-only view over the fields written by the league scraper.
// Missing fields stay empty.
type Summary struct {
	GameID   string              `json:"gameId"`
	Date     string              `json:"date"`
	Team1    string              `json:"team1"`
	Team2    string              `json:"team2"`
	Score    string              `json:"score"`
	Title    string              `json:"title"`
	League   string              `json:"league"`
	MatchURL string              `json:"match_url"`
	Stats    map[string][]string `json:"stats"`
}

func (m Match) Summary() (Summary, error) {
	var out Summary
	if len(m.raw) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(m.raw, &out); err != nil {
		return Summary{}, errors.Wrap(err, "decode match summary")
	}
	return out, nil
}

// Headline renders "team1 score team2", falling back to the stored title.
func (s Summary) Headline() string {
	if s.Team1 != "" && s.Team2 != "" {
		if s.Score != "" {
			return s.Team1 + " " + s.Score + " " + s.Team2
		}
		return s.Team1 + " VS " + s.Team2
	}
	return s.Title
}

// LastN returns the trailing n items of a chronological collection, most
// recent first. n larger than the collection returns every item. The input
// is never modified.
func LastN(items []Match, n int) []Match {
	if n <= 0 {
		return []Match{}
	}
	if n > len(items) {
		n = len(items)
	}

	out := make([]Match, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}
