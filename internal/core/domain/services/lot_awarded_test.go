package services_test

import (
	"testing"
	"time"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAward(t *testing.T, lotID string, details award.StatusDetails, supplierIDs ...string) *award.Award {
	t.Helper()

	if len(supplierIDs) == 0 {
		supplierIDs = []string{"9001"}
	}

	suppliers := make([]award.Supplier, 0, len(supplierIDs))
	for _, id := range supplierIDs {
		suppliers = append(suppliers, award.Supplier{
			Name:       "Supplier " + id,
			Identifier: award.Identifier{Scheme: "MD-IDNO", ID: id},
			Scale:      "sme",
		})
	}

	value, err := kernel.NewMoney(1000, "EUR")
	require.NoError(t, err)

	a, err := award.NewAward(
		kernel.NewUUID(), kernel.NewUUID(),
		"cpid", "EV", "owner", lotID,
		value, suppliers, "", time.Now(),
	)
	require.NoError(t, err)

	if details != award.DetailsEmpty {
		require.NoError(t, a.ApplyStatusDetails(details))
	}
	return a
}

func TestLotAwardedDeriver_Derive(t *testing.T) {
	deriver := services.NewLotAwardedDeriver()

	t.Run("no_awards_for_lot_is_unknown", func(t *testing.T) {
		assert.Nil(t, deriver.Derive(nil, "lot-1"))

		other := makeAward(t, "lot-2", award.DetailsEmpty)
		assert.Nil(t, deriver.Derive([]*award.Award{other}, "lot-1"))
	})

	t.Run("active_award_on_lot_is_unknown", func(t *testing.T) {
		active := makeAward(t, "lot-1", award.DetailsActive)

		assert.Nil(t, deriver.Derive([]*award.Award{active}, "lot-1"))
	})

	t.Run("undecided_award_on_lot_is_unknown", func(t *testing.T) {
		empty := makeAward(t, "lot-1", award.DetailsEmpty)
		unsuccessful := makeAward(t, "lot-1", award.DetailsUnsuccessful)

		assert.Nil(t, deriver.Derive([]*award.Award{unsuccessful, empty}, "lot-1"))
	})

	t.Run("only_unsuccessful_awards_is_false", func(t *testing.T) {
		first := makeAward(t, "lot-1", award.DetailsUnsuccessful, "9001")
		second := makeAward(t, "lot-1", award.DetailsUnsuccessful, "9002")

		flag := deriver.Derive([]*award.Award{first, second}, "lot-1")

		require.NotNil(t, flag)
		assert.False(t, *flag)
	})
}

