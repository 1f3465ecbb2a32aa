package queries_test

import (
	"testing"

	"evaluation/internal/core/application/usecases/queries"
	"evaluation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAwardPeriodQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAwardPeriodQuery("ocds-cp-1", "EV")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ocds-cp-1", query.ContractID())
	assert.Equal(t, "EV", query.Stage())
}

func TestNewGetAwardPeriodQuery_EmptyContractID(t *testing.T) {
	_, err := queries.NewGetAwardPeriodQuery("", "EV")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetAwardPeriodQuery_EmptyStage(t *testing.T) {
	_, err := queries.NewGetAwardPeriodQuery("ocds-cp-1", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetAwardPeriodQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAwardPeriodQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAwardPeriodQueryIsNotConstructed)
}
