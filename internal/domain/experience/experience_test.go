package experience_test

import (
	"encoding/json"
	"testing"

	"github.com/lmoretto/wanderlust/internal/domain/experience"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	require.Equal(t, 200, experience.Required(1))
	require.Equal(t, 400, experience.Required(2))
	require.Equal(t, 2000, experience.Required(10))
}

func TestAdd_SingleLevelUp(t *testing.T) {
	cur := experience.New()

	cur, res, err := experience.Add(cur, 250)
	require.NoError(t, err)
	require.Equal(t, 2, res.Level)
	require.Equal(t, 50, res.Exp)
	require.True(t, res.DidLevelUp)
	require.InDelta(t, 50.0/400.0, res.ProgressToNextLevel, 1e-9)
	require.Equal(t, experience.Experience{Exp: 50, Level: 2}, cur)
}

func TestAdd_MultiLevelCarry(t *testing.T) {
	cur := experience.Experience{Exp: 180, Level: 1}

	cur, res, err := experience.Add(cur, 1000)
	require.NoError(t, err)
	require.Equal(t, 3, res.Level)
	require.Equal(t, 580, res.Exp)
	require.True(t, res.DidLevelUp)
	require.Equal(t, experience.Experience{Exp: 580, Level: 3}, cur)
}

func TestAdd_NoLevelUp(t *testing.T) {
	cur := experience.Experience{Exp: 10, Level: 2}

	cur, res, err := experience.Add(cur, 50)
	require.NoError(t, err)
	require.Equal(t, 2, res.Level)
	require.Equal(t, 60, res.Exp)
	require.False(t, res.DidLevelUp)
}

func TestAdd_NegativeGainRejected(t *testing.T) {
	cur := experience.Experience{Exp: 10, Level: 2}

	got, _, err := experience.Add(cur, -1)
	require.ErrorIs(t, err, experience.ErrNegativeGain)
	require.Equal(t, cur, got, "state must not change on rejection")
}

func TestAdd_InvariantHolds(t *testing.T) {
	gains := []int{0, 1, 49, 50, 199, 200, 250, 1000, 12345}
	cur := experience.New()
	for _, gained := range gains {
		var err error
		var res experience.Result
		cur, res, err = experience.Add(cur, gained)
		require.NoError(t, err)
		require.GreaterOrEqual(t, cur.Exp, 0)
		require.Less(t, cur.Exp, experience.Required(cur.Level))
		require.Equal(t, cur.Level, res.Level)
	}
}

func TestStorageRoundTrip(t *testing.T) {
	cur := experience.Experience{Exp: 150, Level: 4}

	data, err := json.Marshal(cur)
	require.NoError(t, err)

	var loaded experience.Experience
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Equal(t, cur, loaded)
}
