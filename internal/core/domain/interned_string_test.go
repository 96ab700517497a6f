package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("email.mime")
	b := domain.NewInternedString("email." + "mime")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "email.mime", a.String())
	assert.False(t, a.IsZero())

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestInternedString_JSON(t *testing.T) {
	type resource struct {
		LeafPackage domain.InternedString `json:"leaf_package"`
		Missing     domain.InternedString `json:"missing"`
	}

	data, err := json.Marshal(resource{LeafPackage: domain.NewInternedString("json.tests")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"leaf_package":"json.tests","missing":""}`, string(data))

	var decoded resource
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, domain.NewInternedString("json.tests"), decoded.LeafPackage)
}
