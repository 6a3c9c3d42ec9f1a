package queries_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnservedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUnservedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnservedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnservedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnservedOrdersQueryIsNotConstructed)
}
