package v1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "2020-01-31", want: true},
		{in: "2024-02-29", want: true},
		{in: "2023-02-29", want: false},
		{in: "2020-13-01", want: false},
		{in: "2020-1-05", want: false},
		{in: "20-01-2020", want: false},
		{in: "2020-01-05T00:00:00Z", want: false},
		{in: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, IsDate(tc.in))
		})
	}
}

func TestSale_OrderMonth(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantMonth string
		wantOK    bool
	}{
		{name: "valid", date: "2021-07-14", wantMonth: "2021-07", wantOK: true},
		{name: "leap day", date: "2020-02-29", wantMonth: "2020-02", wantOK: true},
		{name: "empty", date: ""},
		{name: "impossible day", date: "2019-02-30"},
		{name: "not padded", date: "2019-1-08"},
		{name: "wrong order", date: "14/07/2021"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			month, ok := (&Sale{OrderDate: tc.date}).OrderMonth()
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantMonth, month)
		})
	}
}

func TestSale_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sale    Sale
		wantErr string
	}{
		{
			name: "valid row",
			sale: Sale{OrderDate: "2020-01-01", ShipDate: "2020-01-04", Sales: decimal.RequireFromString("12.50"), Quantity: 2, Profit: decimal.RequireFromString("-3.10")},
		},
		{
			name: "missing dates are allowed",
			sale: Sale{Sales: decimal.NewFromInt(1)},
		},
		{
			name:    "negative sales",
			sale:    Sale{Sales: decimal.NewFromInt(-1)},
			wantErr: "sales must not be negative",
		},
		{
			name:    "negative quantity",
			sale:    Sale{Quantity: -2},
			wantErr: "quantity must not be negative",
		},
		{
			name:    "sales beyond storable range",
			sale:    Sale{Sales: decimal.RequireFromString("1e400")},
			wantErr: "sales is out of range",
		},
		{
			name:    "negative profit beyond storable range",
			sale:    Sale{Sales: decimal.NewFromInt(1), Profit: decimal.RequireFromString("-1e14")},
			wantErr: "profit",
		},
		{
			name:    "discount beyond storable range",
			sale:    Sale{Discount: decimal.RequireFromString("123456789012345678")},
			wantErr: "discount",
		},
		{
			name: "largest storable amount",
			sale: Sale{Sales: decimal.RequireFromString("99999999999999.9999"), Profit: decimal.RequireFromString("-99999999999999.9999")},
		},
		{
			name:    "malformed order date",
			sale:    Sale{OrderDate: "2020/01/01"},
			wantErr: "order_date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sale.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
