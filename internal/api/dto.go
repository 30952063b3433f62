package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// showRecord is a raw catalog entry as returned by GET <base>/.
type showRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Genres      []int    `json:"genres"`
	Updated     flexTime `json:"updated"`
	Seasons     int      `json:"seasons"`
}

// showDetail is the raw response of GET <base>/id/<showId>.
type showDetail struct {
	Seasons []seasonRecord `json:"seasons"`
}

type seasonRecord struct {
	Season   int             `json:"season"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Episodes []episodeRecord `json:"episodes"`
}

type episodeRecord struct {
	Episode     int    `json:"episode"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
}

// flexTime accepts either an ISO8601 string or unix epoch seconds.
// The API has published both across its history.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			// Date-only form shows up on a few records
			parsed, err = time.Parse("2006-01-02", s)
			if err != nil {
				return err
			}
		}
		t.Time = parsed
		return nil
	}

	epoch, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	t.Time = time.Unix(epoch, 0).UTC()
	return nil
}
