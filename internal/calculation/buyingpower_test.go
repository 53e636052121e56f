package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBuyingPower(t *testing.T) {
	est, err := EstimateBuyingPower(decimal.NewFromInt(2500), decimal.NewFromFloat(0.061), 30, decimal.NewFromFloat(0.20))
	require.NoError(t, err)

	// Three quarters of the budget services principal and interest.
	assert.True(t, est.PrincipalBudget.Equal(decimal.NewFromInt(1875)))

	// The loan the budget carries, grossed up by the down payment share.
	wantLoan := MaxLoanForPayment(decimal.NewFromInt(1875), decimal.NewFromFloat(0.061), 30)
	assert.True(t, est.MaxLoanAmount.Equal(wantLoan))
	assert.True(t, est.AffordablePrice.Equal(wantLoan.Div(decimal.NewFromFloat(0.8))))
	assert.True(t, est.DownPaymentNeeded.Equal(est.AffordablePrice.Mul(decimal.NewFromFloat(0.20))))

	// Sanity: $2,500/mo at 6.1% reaches roughly $300K-$400K of house.
	assert.True(t, est.AffordablePrice.GreaterThan(decimal.NewFromInt(300000)))
	assert.True(t, est.AffordablePrice.LessThan(decimal.NewFromInt(450000)))
}

func TestEstimateBuyingPowerRange(t *testing.T) {
	fifteen, thirty, err := EstimateBuyingPowerRange(decimal.NewFromInt(2500), decimal.NewFromFloat(0.061), decimal.NewFromFloat(0.20))
	require.NoError(t, err)

	assert.Equal(t, 15, fifteen.TermYears)
	assert.Equal(t, 30, thirty.TermYears)

	// Stretching the term always buys more house.
	assert.True(t, thirty.AffordablePrice.GreaterThan(fifteen.AffordablePrice))
}

func TestEstimateBuyingPower_Errors(t *testing.T) {
	_, err := EstimateBuyingPower(decimal.Zero, decimal.NewFromFloat(0.061), 30, decimal.NewFromFloat(0.2))
	require.Error(t, err)

	_, err = EstimateBuyingPower(decimal.NewFromInt(2500), decimal.NewFromFloat(0.061), 0, decimal.NewFromFloat(0.2))
	require.Error(t, err)

	_, err = EstimateBuyingPower(decimal.NewFromInt(2500), decimal.NewFromFloat(0.061), 30, decimal.NewFromInt(1))
	require.Error(t, err)
}
