// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkutashi/standards-extractor/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.IndexConfig{IndexDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords() []types.Record {
	return []types.Record{
		{
			OperatingName:  "ACME",
			LegalName:      "Example Corp, Inc.",
			Website:        "www.acme.org",
			DocumentName:   "ANSI X9.24-2021",
			StandardTitle:  "Retail Financial Services Key Management",
			PublishingDate: "2021-05-01",
			Classification: "American",
		},
		{
			OperatingName:  "BETA",
			LegalName:      "Beta Standards Body",
			Website:        "Nil",
			DocumentName:   "INCITS 499-2018",
			StandardTitle:  "Information Technology Access Control",
			PublishingDate: "2018-06-30",
			Classification: "American",
		},
	}
}

func TestIngestAndQuery(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	runID, err := s.Ingest(ctx, "data/input/listing.pdf", testRecords())
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	results, err := s.Query(ctx, QueryOptions{Name: "ACME"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "ANSI X9.24-2021", results[0].DocumentName)
	assert.Equal(t, runID, results[0].RunID)
	assert.Equal(t, "data/input/listing.pdf", results[0].Source)
}

func TestQueryFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, "a.pdf", testRecords())
	require.NoError(t, err)

	tests := []struct {
		name string
		opts QueryOptions
		want int
	}{
		{"document prefix", QueryOptions{Document: "INCITS"}, 1},
		{"exact date", QueryOptions{Date: "2021-05-01"}, 1},
		{"legal name substring", QueryOptions{Name: "Standards Body"}, 1},
		{"no match", QueryOptions{Name: "does-not-exist"}, 0},
		{"run filter", QueryOptions{RunID: 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Query(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, results, tt.want)
		})
	}
}

func TestQueryLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Ingest(ctx, "a.pdf", testRecords())
	require.NoError(t, err)

	results, err := s.Query(ctx, QueryOptions{RunID: 1, MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSeparateRunsKeepProvenance(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.Ingest(ctx, "jan.pdf", testRecords()[:1])
	require.NoError(t, err)
	second, err := s.Ingest(ctx, "feb.pdf", testRecords())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	results, err := s.Query(ctx, QueryOptions{RunID: second})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, "feb.pdf", r.Source)
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.False(t, QueryOptions{Name: "x"}.IsEmpty())
	assert.False(t, QueryOptions{RunID: 2}.IsEmpty())
}
