package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	name string
	args []string
}

func fake(out string, err error, calls *[]invocation) func(context.Context, string, ...string) (string, error) {
	return func(ctx context.Context, name string, args ...string) (string, error) {
		*calls = append(*calls, invocation{name, args})
		return out, err
	}
}

func TestGogReadRange(t *testing.T) {
	calls := []invocation{}

	g := NewGog("gog")
	g.run = fake(`[["Part","Week 1","Week 2"],["A2543",""],["A2663","40","35"]]`, nil, &calls)

	table, err := g.ReadRange(context.Background(), "alice@example.com", "SPREADSHEET", "CPFR!A1:BM50")

	require.NoError(t, err)

	expected := Table{
		{"Part", "Week 1", "Week 2"},
		{"A2543", ""},
		{"A2663", "40", "35"},
	}

	assert.Equal(t, expected, table)

	require.Len(t, calls, 1)
	assert.Equal(t, "gog", calls[0].name)
	assert.Equal(t, []string{"sheets", "get", "-a", "alice@example.com", "-j", "--results-only", "SPREADSHEET", "CPFR!A1:BM50"}, calls[0].args)
}

func TestGogReadRangeWithMalformedResponse(t *testing.T) {
	calls := []invocation{}

	g := NewGog("gog")
	g.run = fake(`error: quota exceeded`, nil, &calls)

	_, err := g.ReadRange(context.Background(), "alice@example.com", "SPREADSHEET", "CPFR!A1:BM50")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid response")
}

func TestGogReadRangePropagatesRunError(t *testing.T) {
	calls := []invocation{}

	g := NewGog("gog")
	g.run = fake("", fmt.Errorf("gog: no such account"), &calls)

	_, err := g.ReadRange(context.Background(), "alice@example.com", "SPREADSHEET", "CPFR!A1:BM50")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such account")
}

func TestGogClearRange(t *testing.T) {
	calls := []invocation{}

	g := NewGog("gog")
	g.run = fake("", nil, &calls)

	err := g.ClearRange(context.Background(), "bob@example.com", "MIRROR", "Sheet1!A1:BM50")

	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"sheets", "clear", "-a", "bob@example.com", "-y", "MIRROR", "Sheet1!A1:BM50"}, calls[0].args)
}

func TestGogUpdateRangeEncodesPayload(t *testing.T) {
	calls := []invocation{}

	g := NewGog("gog")
	g.run = fake("", nil, &calls)

	table := Table{
		{"Part", "Week 1", "Week 2"},
		{"A2543", ""},
		{"A2663", "40", "35"},
	}

	err := g.UpdateRange(context.Background(), "bob@example.com", "MIRROR", "Sheet1!A1", table)

	require.NoError(t, err)
	require.Len(t, calls, 1)

	args := calls[0].args
	require.Greater(t, len(args), 7)
	assert.Equal(t, []string{"sheets", "update", "-a", "bob@example.com", "-y", "--values-json"}, args[:6])
	assert.Equal(t, []string{"MIRROR", "Sheet1!A1"}, args[7:])

	// the payload must decode back to exactly the table that was written
	decoded := Table{}
	require.NoError(t, json.Unmarshal([]byte(args[6]), &decoded))
	assert.Equal(t, table, decoded)
}
