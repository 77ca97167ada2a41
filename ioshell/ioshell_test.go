package ioshell_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/foundry/ioshell"
)

func TestRunFactory_Ok(t *testing.T) {
	in := strings.NewReader(`{
		"recipes": [{"id":"gear","machine":"assembler","base_crafts_per_min":60,
			"inputs":{"iron_plate":1},"outputs":{"iron_gear":1}}],
		"machines": {"assembler":10},
		"raw_supply": {"iron_plate":200},
		"target": {"item":"iron_gear","rate_per_min":10}
	}`)
	var out bytes.Buffer
	err := ioshell.RunFactory(in, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"status":"ok"`)
}

func TestRunFactory_InvalidInput(t *testing.T) {
	in := strings.NewReader(`{"recipes": [], "target": {"item":"x","rate_per_min":-1}}`)
	var out bytes.Buffer
	err := ioshell.RunFactory(in, &out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ioshell.ErrInvalidInput))
}

func TestRunFactory_MalformedJSON(t *testing.T) {
	in := strings.NewReader(`{not json`)
	var out bytes.Buffer
	err := ioshell.RunFactory(in, &out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ioshell.ErrInvalidInput))
}

func TestRunBelts_Ok(t *testing.T) {
	in := strings.NewReader(`{
		"nodes": [{"id":"S","supply":50},{"id":"J","cap":100},{"id":"T","supply":-50}],
		"edges": [{"from":"S","to":"J","lo":0,"hi":100},{"from":"J","to":"T","lo":0,"hi":100}]
	}`)
	var out bytes.Buffer
	err := ioshell.RunBelts(context.Background(), in, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"status":"ok"`)
}

func TestRunBelts_InvalidInput(t *testing.T) {
	in := strings.NewReader(`{
		"nodes": [{"id":"A","supply":10},{"id":"B","supply":-10}],
		"edges": [{"from":"A","to":"B","lo":20,"hi":5}]
	}`)
	var out bytes.Buffer
	err := ioshell.RunBelts(context.Background(), in, &out)
	require.Error(t, err)
	require.True(t, errors.Is(err, ioshell.ErrInvalidInput))
}
