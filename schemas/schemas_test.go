package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for name, doc := range map[string]string{"check": Check, "bundle": Bundle} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, doc)

			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(doc), &v))
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
		})
	}
}

func TestEmbeddedSchemas_Loadable(t *testing.T) {
	// Both schemas must compile standalone; the bundle schema carries its own
	// check definition so no cross-file reference resolution is needed.
	for name, doc := range map[string]string{"check": Check, "bundle": Bundle} {
		t.Run(name, func(t *testing.T) {
			_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
			assert.NoError(t, err)
		})
	}
}
