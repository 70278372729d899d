package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextMonth(t *testing.T) {
	tests := []struct {
		month     string
		want      string
		wantError bool
	}{
		{month: "2019-11", want: "2019-12"},
		{month: "2019-12", want: "2020-01"},
		{month: "2020-01", want: "2020-02"},
		{month: "2020-13", wantError: true},
		{month: "2020-1", wantError: true},
		{month: "", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.month, func(t *testing.T) {
			got, err := NextMonth(tc.month)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
