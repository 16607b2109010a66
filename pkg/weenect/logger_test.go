package weenect

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Debug("request sent", "tracker_id", "100")
	logger.Error("request failed", "status", 500)

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"message":"request sent"`)
	assert.Contains(t, out, `"tracker_id":"100"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"status":500`)
}
