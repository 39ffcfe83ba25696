package supabase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/motionhq/motion/api/internal/database"
)

const (
	tableProfiles   = "profiles"
	tableAdventures = "adventures"
	tableReviews    = "community_adventure_reviews"
	tableAlbums     = "albums"
)

// decodeRows unmarshals a PostgREST row array
func decodeRows[T any](body []byte) ([]*T, error) {
	var rows []*T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode rows: %v", database.ErrQuery, err)
	}
	if rows == nil {
		rows = []*T{}
	}
	return rows, nil
}

// firstRow returns the first row, or nil when the array is empty
func firstRow[T any](body []byte) (*T, error) {
	rows, err := decodeRows[T](body)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func byID(id string) url.Values {
	return url.Values{"id": {database.Eq(id)}}
}

func newestFirst(column, value string, limit int) url.Values {
	return url.Values{
		"select": {"*"},
		column:   {database.Eq(value)},
		"order":  {"created_at.desc"},
		"limit":  {strconv.Itoa(limit)},
	}
}
