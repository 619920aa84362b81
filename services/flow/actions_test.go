package flow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowbook/models"
)

func TestDecodeActionTypedPayloads(t *testing.T) {
	action, err := DecodeAction("SELECT_SERVICE", json.RawMessage(`{
		"service": {"id": 5, "name": "Yoga Class", "base_price": 25, "default_duration": 60}
	}`))
	require.NoError(t, err)

	sel, ok := action.(SelectService)
	require.True(t, ok)
	assert.Equal(t, int64(5), sel.Service.ID)
	assert.Equal(t, "Yoga Class", sel.Service.Name)

	action, err = DecodeAction("SELECT_TIME_SLOT", json.RawMessage(`{
		"date": "2026-09-01",
		"timeSlot": {"date": "2026-09-01", "start_time": "10:00", "end_time": "11:00", "session_id": 77},
		"timezone": "Europe/London"
	}`))
	require.NoError(t, err)

	slot, ok := action.(SelectTimeSlot)
	require.True(t, ok)
	assert.Equal(t, "2026-09-01", slot.Date)
	assert.Equal(t, int64(77), slot.Slot.SessionID)
	assert.Equal(t, "Europe/London", slot.Timezone)
}

func TestDecodeActionPayloadFreeVariants(t *testing.T) {
	action, err := DecodeAction("RESET_FLOW", nil)
	require.NoError(t, err)
	assert.IsType(t, ResetFlow{}, action)

	action, err = DecodeAction("RESET_SELECTIONS", nil)
	require.NoError(t, err)
	assert.IsType(t, ResetSelections{}, action)
}

func TestDecodeActionLegacyStepAlias(t *testing.T) {
	action, err := DecodeAction("SET_CURRENT_STEP", json.RawMessage(`{"step": "date"}`))
	require.NoError(t, err)

	step, ok := action.(SetStep)
	require.True(t, ok)
	assert.Equal(t, models.StepDate, step.Step)
}

func TestDecodeActionRejectsUnknownType(t *testing.T) {
	_, err := DecodeAction("DO_SOMETHING", nil)
	require.Error(t, err)
}

func TestDecodeActionRejectsConfirmationWrites(t *testing.T) {
	// Confirmations are written server-side on submission only; the wire
	// decoder must not accept them from clients.
	_, err := DecodeAction("SET_BOOKING_CONFIRMATION", json.RawMessage(`{
		"confirmation": {"status": "confirmed", "booking_reference": "BK-HACKED00"}
	}`))
	require.Error(t, err)
}

func TestDecodeActionRejectsMalformedPayload(t *testing.T) {
	_, err := DecodeAction("SELECT_DATE", json.RawMessage(`{"date": 42}`))
	require.Error(t, err)
}
