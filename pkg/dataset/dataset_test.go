package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/modelaudit/pkg/testutil"
)

func TestUnregisteredPoolUnavailable(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	assert.False(t, KnowledgeAvailable())

	_, err := Knowledge()
	assert.ErrorIs(t, err, ErrPoolUnavailable)
}

func TestLoaderMemoized(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	loads := 0
	RegisterKnowledge(func() ([]MultipleChoiceItem, error) {
		loads++
		return []MultipleChoiceItem{
			{Question: "q1", Choices: []string{"a", "b"}, Answer: 0},
		}, nil
	})

	require.True(t, KnowledgeAvailable())

	for i := 0; i < 5; i++ {
		items, err := Knowledge()
		require.NoError(t, err)
		require.Len(t, items, 1)
	}
	assert.Equal(t, 1, loads, "loader must run once per process lifetime")
}

func TestLoaderMemoizedUnderConcurrentAccess(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	loads := 0
	RegisterKnowledge(func() ([]MultipleChoiceItem, error) {
		loads++
		return []MultipleChoiceItem{
			{Question: "q1", Choices: []string{"a", "b"}, Answer: 0},
		}, nil
	})

	testutil.RunConcurrently(32, func(int) {
		items, err := Knowledge()
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
	assert.Equal(t, 1, loads, "loader must run once even under concurrent first access")
}

func TestLoaderErrorNotCached(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	boom := errors.New("network down")
	calls := 0
	RegisterTruthfulness(func() ([]TruthfulnessItem, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return []TruthfulnessItem{{Question: "q", BestAnswer: "a"}}, nil
	})

	_, err := Truthfulness()
	assert.ErrorIs(t, err, boom)

	items, err := Truthfulness()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestResetCacheDropsLoaderAndItems(t *testing.T) {
	ResetCache()

	RegisterCommonsense(func() ([]ContinuationItem, error) {
		return []ContinuationItem{{Context: "c", Endings: []string{"e1", "e2"}, Label: 1}}, nil
	})
	_, err := Commonsense()
	require.NoError(t, err)

	ResetCache()

	assert.False(t, CommonsenseAvailable())
	_, err = Commonsense()
	assert.ErrorIs(t, err, ErrPoolUnavailable)
}

func TestRegisterClearsPreviousCache(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	RegisterKnowledge(func() ([]MultipleChoiceItem, error) {
		return []MultipleChoiceItem{{Question: "old"}}, nil
	})
	_, err := Knowledge()
	require.NoError(t, err)

	RegisterKnowledge(func() ([]MultipleChoiceItem, error) {
		return []MultipleChoiceItem{{Question: "new"}}, nil
	})

	items, err := Knowledge()
	require.NoError(t, err)
	assert.Equal(t, "new", items[0].Question)
}

func TestKnowledgeFileLoader(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	path := filepath.Join(t.TempDir(), "mmlu.json")
	payload := `[{"question":"What is 2+2?","choices":["3","4","5","6"],"answer":1}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	RegisterKnowledge(KnowledgeFileLoader(path))

	items, err := Knowledge()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "What is 2+2?", items[0].Question)
	assert.Equal(t, 1, items[0].Answer)
}

func TestFileLoaderMissingFile(t *testing.T) {
	ResetCache()
	t.Cleanup(ResetCache)

	RegisterTruthfulness(TruthfulnessFileLoader(filepath.Join(t.TempDir(), "missing.json")))

	require.True(t, TruthfulnessAvailable())
	_, err := Truthfulness()
	assert.Error(t, err)
}
