package surreal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	tableProfiles   = "profiles"
	tableAdventures = "adventures"
	tableReviews    = "community_adventure_reviews"
	tableAlbums     = "albums"
)

func recordID(table, key string) models.RecordID {
	return models.RecordID{Table: table, ID: key}
}

// recordKey returns the key part of a SurrealDB record ID
func recordKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		if i := strings.Index(v, ":"); i >= 0 {
			return strings.Trim(v[i+1:], "⟨⟩`")
		}
		return v
	case models.RecordID:
		return fmt.Sprintf("%v", v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%v", v.ID)
		}
	case map[string]interface{}:
		if key, ok := v["id"]; ok {
			return fmt.Sprintf("%v", key)
		}
	}
	return ""
}

// extractQueryResults extracts the record array of the first statement
func extractQueryResults(result []interface{}) []map[string]interface{} {
	if len(result) == 0 {
		return nil
	}

	rows := result
	if first, ok := result[0].(map[string]interface{}); ok {
		if resultArray, ok := first["result"].([]interface{}); ok {
			rows = resultArray
		}
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if m, ok := row.(map[string]interface{}); ok {
			records = append(records, m)
		}
	}
	return records
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getStringPtr extracts an optional string value from a map
func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

// getFloat extracts a numeric value from a map
func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// getBool extracts a bool value from a map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getBoolPtr extracts an optional bool value from a map
func getBoolPtr(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) *time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
	case time.Time:
		return &v
	case models.CustomDateTime:
		t := v.Time
		return &t
	case *models.CustomDateTime:
		if v != nil {
			t := v.Time
			return &t
		}
	}
	return nil
}

// getTimeValue extracts a time value, zero when absent
func getTimeValue(m map[string]interface{}, key string) time.Time {
	if t := getTime(m, key); t != nil {
		return t.UTC()
	}
	return time.Time{}
}

// getStringSlice extracts a string slice from a map
func getStringSlice(m map[string]interface{}, key string) []string {
	result := []string{}
	if v, ok := m[key].([]interface{}); ok {
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
	}
	return result
}

// decodeField round-trips a nested value through JSON into out
func decodeField(m map[string]interface{}, key string, out interface{}) error {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
