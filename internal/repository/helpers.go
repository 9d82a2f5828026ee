package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// convertSurrealID converts a SurrealDB ID (which may be a complex object) to a string
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// parseTime parses time from the formats the SurrealDB client may return
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// parseFloat parses a numeric field from the formats the client may return
func parseFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return 0
}

// extractQueryResults extracts the result array from a SurrealDB response
func extractQueryResults(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	if resp, ok := result[0].(map[string]interface{}); ok {
		if resultArray, ok := resp["result"].([]interface{}); ok {
			return resultArray
		}
	}
	return result
}

// extractString returns the string value of a field, or "" if absent
func extractString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
