package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintJSON(t *testing.T) {
	out, err := json.Marshal(NewUint(12345))
	require.Nil(t, err)
	require.Equal(t, `"12345"`, string(out))

	var in Uint
	require.Nil(t, json.Unmarshal([]byte(`"98765432109876543210"`), &in))
	require.Equal(t, "98765432109876543210", in.String())
}

func TestUintScan(t *testing.T) {
	var u Uint

	require.Nil(t, u.Scan("42"))
	require.Equal(t, uint64(42), u.Uint64())

	require.Nil(t, u.Scan([]byte("43")))
	require.Equal(t, uint64(43), u.Uint64())

	require.Nil(t, u.Scan(int64(44)))
	require.Equal(t, uint64(44), u.Uint64())

	require.NotNil(t, u.Scan("not a number"))
}

func TestUintFromString(t *testing.T) {
	u, err := UintFromString("1000000000000000000000000")
	require.Nil(t, err)
	require.Equal(t, "1000000000000000000000000", u.String())

	_, err = UintFromString("-1")
	require.NotNil(t, err)
}
