package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGasLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		auto    bool
		wantErr bool
	}{
		{in: "", want: DefaultGasLimit},
		{in: "3000000", want: 3_000_000},
		{in: "0x5208", want: 21_000},
		{in: "AUTO", auto: true},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGasLimit(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.auto, got.Auto)
			if !tt.auto {
				assert.Equal(t, tt.want, got.Value.Uint64())
			}
		})
	}
}

func TestParseGasPrice(t *testing.T) {
	got, err := ParseGasPrice("")
	require.NoError(t, err)
	assert.Equal(t, "30000000000", got.Value.String())

	got, err = ParseGasPrice("auto")
	require.NoError(t, err)
	assert.True(t, got.Auto)

	got, err = ParseGasPrice("1.5gwei")
	require.NoError(t, err)
	assert.Equal(t, "1500000000", got.Value.String())

	_, err = ParseGasPrice("fast")
	assert.Error(t, err)
}

func TestParseWei(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "0"},
		{in: "42", want: "42"},
		{in: "42wei", want: "42"},
		{in: "2 gwei", want: "2000000000"},
		{in: "0.5ether", want: "500000000000000000"},
		{in: "1Ether", want: "1000000000000000000"},
		{in: "1.5", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "0.0000000001gwei", wantErr: true},
		{in: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWei(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0", FormatEther(nil))
	assert.Equal(t, "0", FormatEther(big.NewInt(0)))
	assert.Equal(t, "1", FormatEther(big.NewInt(1e18)))
	assert.Equal(t, "0.045", FormatEther(big.NewInt(45_000_000_000_000_000)))
	assert.Equal(t, "10000", FormatEther(new(big.Int).Mul(big.NewInt(10_000), big.NewInt(1e18))))
}
