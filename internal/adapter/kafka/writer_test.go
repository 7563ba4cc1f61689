package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-cone-engine/internal/engine"
)

func TestSerializeReport(t *testing.T) {
	asOf := time.Date(2024, 8, 28, 12, 0, 0, 0, time.UTC)
	report := engine.Report{
		Outcome:         engine.OutcomeImpacts,
		AsOf:            asOf,
		GeneratedAt:     asOf.Add(3 * time.Minute),
		Storms:          []string{"Idalia"},
		AffectedClients: []string{"Miami"},
		DroppedRecords:  4,
	}

	msg, err := serializeReport(report)
	require.NoError(t, err)

	assert.Equal(t, "2024-08-28T12:00:00Z", string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "impacts", headers["outcome"])
	assert.Equal(t, "2024-08-28T12:03:00Z", headers["generated_at"])

	var decoded engine.Report
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, report.Outcome, decoded.Outcome)
	assert.True(t, report.AsOf.Equal(decoded.AsOf))
	assert.Equal(t, report.Storms, decoded.Storms)
	assert.Equal(t, report.AffectedClients, decoded.AffectedClients)
	assert.Equal(t, 4, decoded.DroppedRecords)
}
