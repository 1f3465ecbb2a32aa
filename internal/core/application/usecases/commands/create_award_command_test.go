package commands_test

import (
	"testing"
	"time"

	"evaluation/internal/core/application/usecases/commands"
	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAwardCommand(t *testing.T) {
	value, err := kernel.NewMoney(25000, "EUR")
	require.NoError(t, err)

	suppliers := []award.Supplier{newSupplier("MD-IDNO", "1001", "sme")}
	schemes := []string{"MD-IDNO"}
	scales := []string{"SME"}

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateAwardCommand(
			"ocds-cp-1", "EV", "lot-1", "owner-1", testStartDate,
			"supply of laptops", value, suppliers, schemes, scales,
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "ocds-cp-1", cmd.ContractID())
		assert.Equal(t, "EV", cmd.Stage())
		assert.Equal(t, "lot-1", cmd.LotID())
		assert.Equal(t, "owner-1", cmd.Owner())
		assert.Equal(t, testStartDate, cmd.StartDate())
		assert.Equal(t, "supply of laptops", cmd.Description())
		assert.Equal(t, value, cmd.Value())
		assert.Equal(t, suppliers, cmd.Suppliers())
		assert.Equal(t, schemes, cmd.ValidSchemes())
		assert.Equal(t, scales, cmd.ValidScales())
	})

	tests := []struct {
		name       string
		contractID string
		stage      string
		lotID      string
		owner      string
		startDate  time.Time
		value      kernel.Money
		suppliers  []award.Supplier
		schemes    []string
		scales     []string
	}{
		{"empty_contract_id", "", "EV", "lot-1", "owner-1", testStartDate, value, suppliers, schemes, scales},
		{"empty_stage", "ocds-cp-1", "", "lot-1", "owner-1", testStartDate, value, suppliers, schemes, scales},
		{"empty_lot_id", "ocds-cp-1", "EV", "", "owner-1", testStartDate, value, suppliers, schemes, scales},
		{"empty_owner", "ocds-cp-1", "EV", "lot-1", "", testStartDate, value, suppliers, schemes, scales},
		{"zero_start_date", "ocds-cp-1", "EV", "lot-1", "owner-1", time.Time{}, value, suppliers, schemes, scales},
		{"no_suppliers", "ocds-cp-1", "EV", "lot-1", "owner-1", testStartDate, value, nil, schemes, scales},
		{"no_schemes", "ocds-cp-1", "EV", "lot-1", "owner-1", testStartDate, value, suppliers, nil, scales},
		{"no_scales", "ocds-cp-1", "EV", "lot-1", "owner-1", testStartDate, value, suppliers, schemes, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateAwardCommand(
				tt.contractID, tt.stage, tt.lotID, tt.owner, tt.startDate,
				"", tt.value, tt.suppliers, tt.schemes, tt.scales,
			)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}

	t.Run("invalid_value", func(t *testing.T) {
		_, err := commands.NewCreateAwardCommand(
			"ocds-cp-1", "EV", "lot-1", "owner-1", testStartDate,
			"", kernel.Money{}, suppliers, schemes, scales,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		err := commands.CreateAwardCommand{}.Validate()
		require.ErrorIs(t, err, commands.ErrCreateAwardCommandIsNotConstructed)
	})
}
