package apiv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, "SubKeeper API", doc.Info.Title)

	for _, path := range []string{"/ping", "/user/profile", "/subscriptions", "/subscriptions/upcoming", "/stats"} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
