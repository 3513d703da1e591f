package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpdateInvestmentInputColumns(t *testing.T) {
	amount := 500.0
	in := UpdateInvestmentInput{InvestmentAmount: &amount}

	cols := in.columns()
	require.Len(t, cols, 1, "only present fields may enter the SET clause")
	require.Equal(t, 500.0, cols["Investment_Amount"])
}

func TestUpdateInvestmentInputColumnsAllFields(t *testing.T) {
	pid, iid := uint(1), uint(2)
	amount := 750.25
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	active := "N"

	in := UpdateInvestmentInput{
		ProjectID:        &pid,
		InvestorID:       &iid,
		InvestmentAmount: &amount,
		InvestmentDate:   &date,
		Active:           &active,
	}

	cols := in.columns()
	require.Equal(t, map[string]any{
		"Project_ID":        uint(1),
		"Investor_ID":       uint(2),
		"Investment_Amount": 750.25,
		"Investment_Date":   date,
		"Active":            "N",
	}, cols)
}

func TestUpdateInvestmentInputColumnsEmpty(t *testing.T) {
	require.Empty(t, UpdateInvestmentInput{}.columns())
}
