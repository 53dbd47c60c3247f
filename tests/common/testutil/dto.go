//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it went through its JSON form.
type Mutation func(body map[string]any)

// DtoMap turns a request DTO into its JSON object so a test can break one field at a time.
func DtoMap(t *testing.T, dto any, mutations ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, m := range mutations {
		if m != nil {
			m(body)
		}
	}
	return body
}

// Field sets key to value; a nil value drops the key.
func Field(key string, value any) Mutation {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
