package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalAbsentNullValue(t *testing.T) {
	type payload struct {
		Cost Optional[float64] `json:"cost"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Cost.Set)
	assert.False(t, absent.Cost.Valid)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"cost": null}`), &null))
	assert.True(t, null.Cost.Set)
	assert.False(t, null.Cost.Valid)
	assert.Nil(t, null.Cost.Ptr())

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"cost": 149.5}`), &set))
	assert.True(t, set.Cost.Set)
	assert.True(t, set.Cost.Valid)
	require.NotNil(t, set.Cost.Ptr())
	assert.Equal(t, 149.5, *set.Cost.Ptr())
}

func TestOptionalString(t *testing.T) {
	type payload struct {
		TradeID Optional[string] `json:"assigned_trade_id"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"assigned_trade_id": "t-1"}`), &p))
	assert.True(t, p.TradeID.Set)
	assert.True(t, p.TradeID.Valid)
	assert.Equal(t, "t-1", p.TradeID.Value)
}

func TestUpdateJobRequestEmpty(t *testing.T) {
	var empty UpdateJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.Empty())

	var unassign UpdateJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{"assigned_trade_id": null}`), &unassign))
	assert.False(t, unassign.Empty())

	var statusOnly UpdateJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status_id": "s-1"}`), &statusOnly))
	assert.False(t, statusOnly.Empty())
}
