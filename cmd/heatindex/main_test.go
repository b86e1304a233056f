package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-temperature", "35.5", "-humidity", "65"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Heat index:  49.3 °C")
	assert.Contains(t, stdout.String(), "Risk level:  extreme")
	assert.Contains(t, stdout.String(), "personal:")
	assert.Contains(t, stdout.String(), "infrastructure:")
}

func TestRun_JSONWithAudience(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-temperature", "27", "-humidity", "40", "-audience", "personal", "-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "low", out["riskLevel"])
	assert.InDelta(t, 26.9, out["heatIndex"], 0.001)
	recs, ok := out["recommendations"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs, "personal")
}

func TestRun_InvalidInput(t *testing.T) {
	tests := map[string][]string{
		"missing flags":    {},
		"humidity > 100":   {"-temperature", "30", "-humidity", "120"},
		"unknown audience": {"-temperature", "30", "-humidity", "50", "-audience", "pets"},
		"bad flag":         {"-temperature", "warm"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 2, run(args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
		})
	}
}
