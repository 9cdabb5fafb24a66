package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api/v1", doc.BasePath)

	routes := map[string][]string{
		"/colleges":                              {"get", "post"},
		"/colleges/{collegeID}":                  {"get"},
		"/colleges/{collegeID}/events":           {"get"},
		"/events":                                {"get", "post"},
		"/events/{eventID}":                      {"get", "put", "delete"},
		"/events/{eventID}/stats":                {"get"},
		"/students":                              {"get", "post"},
		"/students/search":                       {"get"},
		"/students/login":                        {"post"},
		"/students/{studentID}":                  {"delete"},
		"/students/{studentID}/registrations":    {"get"},
		"/students/{studentID}/available-events": {"get"},
		"/students/{studentID}/pending-feedback": {"get"},
		"/registrations":                         {"post"},
		"/register":                              {"post"},
		"/registrations/search":                  {"get"},
		"/registrations/{registrationID}":        {"delete"},
		"/attendance":                            {"post"},
		"/feedback":                              {"post"},
		"/reports/event-popularity":              {"get"},
		"/reports/student-participation":         {"get"},
		"/reports/college-performance":           {"get"},
		"/reports/system-overview":               {"get"},
		"/reports/event-type-analytics":          {"get"},
		"/reports/top-active-students":           {"get"},
		"/reports/filter":                        {"get"},
		"/health":                                {"get"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}

	for _, def := range []string{
		"response.Err",
		"request.RegisterRequest",
		"request.StudentLookupRequest",
		"domain.Registration",
		"domain.FilteredEventReport",
	} {
		assert.Contains(t, doc.Definitions, def)
	}
}
