package cli

import (
	"testing"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		raw     string
		want    Selection
		wantErr error
	}{
		{raw: "1", want: IndexSelection(0)},
		{raw: " 12 ", want: IndexSelection(11)},
		{raw: "0", want: IndexSelection(-1)},
		{raw: "Acme", want: NameSelection("Acme")},
		{raw: "1a", want: NameSelection("1a")},
		{raw: "-1", want: NameSelection("-1")},
		{raw: "12345678901", want: NameSelection("12345678901")},
		{raw: "   ", wantErr: errCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSelection(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectionResolve(t *testing.T) {
	items := []string{"Web", "Mobile"}

	v, fromList, err := IndexSelection(1).Resolve(items)
	require.NoError(t, err)
	assert.Equal(t, "Mobile", v)
	assert.True(t, fromList)

	v, fromList, err = NameSelection("API").Resolve(items)
	require.NoError(t, err)
	assert.Equal(t, "API", v)
	assert.False(t, fromList)

	_, _, err = IndexSelection(2).Resolve(items)
	assert.ErrorIs(t, err, errInvalidNumber)
	_, _, err = IndexSelection(-1).Resolve(items)
	assert.ErrorIs(t, err, errInvalidNumber)
	_, _, err = IndexSelection(0).Resolve(nil)
	assert.ErrorIs(t, err, errEmptyList)
	_, _, err = Selection{}.Resolve(items)
	assert.ErrorIs(t, err, errCancelled)
}

func TestResolveArgs(t *testing.T) {
	customers := []domain.Customer{
		{Name: "Acme", Projects: []string{"Web", "Mobile"}},
		{Name: "Beta"},
	}

	tests := []struct {
		name              string
		customer, project string
		want              startTarget
	}{
		{"both numbers", "1", "2", startTarget{Customer: "Acme", Project: "Mobile"}},
		{"project number out of range", "1", "3", startTarget{Customer: "Acme", Project: "3"}},
		{"customer without projects", "2", "1", startTarget{Customer: "Beta", Project: "1"}},
		{"customer number out of range", "3", "1", startTarget{Customer: "3", Project: "1"}},
		{"customer zero", "0", "1", startTarget{Customer: "0", Project: "1"}},
		{"number then name", "1", "API", startTarget{Customer: "Acme", Project: "API"}},
		{"names", "Gamma", "2", startTarget{Customer: "Gamma", Project: "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveArgs(customers, tt.customer, tt.project))
		})
	}
}
