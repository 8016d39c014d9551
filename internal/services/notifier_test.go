package services

import (
	"encoding/json"
	"testing"

	"maintdesk_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationDataPayload(t *testing.T) {
	data := notificationData(map[string]interface{}{
		"quote_id":     "q-1",
		"quote_number": "QTE-20260829-AAAAA",
	})
	assert.JSONEq(t, `{"quote_id":"q-1","quote_number":"QTE-20260829-AAAAA"}`, string(data))
}

func TestNotificationDataSurfacesInListRow(t *testing.T) {
	row := repositories.NotificationRow{}
	row.Data = notificationData(map[string]interface{}{"status": "Completed"})

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"data":{"status":"Completed"}`)
}
