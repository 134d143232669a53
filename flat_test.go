package hammingheap

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hammingheap/distance"
	"github.com/hupe1980/hammingheap/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlatWithCodes(t *testing.T, codes [][]byte, opts ...Option) *Flat {
	t.Helper()
	f, err := New(len(codes[0])*8, opts...)
	require.NoError(t, err)
	for i, c := range codes {
		id, err := f.Add(context.Background(), c)
		require.NoError(t, err)
		require.Equal(t, uint32(i), id)
	}
	return f
}

func toTestResults(res []Result) []testutil.SearchResult {
	out := make([]testutil.SearchResult, len(res))
	for i, r := range res {
		out[i] = testutil.SearchResult{ID: r.ID, Distance: r.Distance}
	}
	return out
}

func TestNew(t *testing.T) {
	for _, bits := range []int{0, -8, 7, 129} {
		_, err := New(bits)
		assert.ErrorIs(t, err, ErrInvalidBits, "bits=%d", bits)
	}

	f, err := New(128)
	require.NoError(t, err)
	assert.Equal(t, 128, f.Bits())
	assert.Equal(t, 129, f.Distances())
	assert.Equal(t, 0, f.Len())
}

func TestFlat(t *testing.T) {
	ctx := context.Background()

	t.Run("AddAndCode", func(t *testing.T) {
		f, err := New(16, WithInitialCapacity(4))
		require.NoError(t, err)

		code := []byte{0xAB, 0xCD}
		id, err := f.Add(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), id)

		code[0] = 0 // the stored copy is independent
		got, err := f.Code(id)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xAB, 0xCD}, got)

		_, err = f.Code(7)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("CodeLengthMismatch", func(t *testing.T) {
		f, err := New(16)
		require.NoError(t, err)

		_, err = f.Add(ctx, []byte{1, 2, 3})
		var lm *ErrCodeLengthMismatch
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 2, lm.Expected)
		assert.Equal(t, 3, lm.Actual)

		_, err = f.Search(ctx, []byte{1}, 1)
		require.ErrorAs(t, err, &lm)
		assert.Equal(t, 0, f.Len())
	})

	t.Run("InvalidK", func(t *testing.T) {
		f, err := New(8)
		require.NoError(t, err)
		_, err = f.Search(ctx, []byte{0}, 0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("Empty", func(t *testing.T) {
		f, err := New(8)
		require.NoError(t, err)
		res, err := f.Search(ctx, []byte{0}, 3)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestFlat_SearchIsExact(t *testing.T) {
	rng := testutil.NewRNG(4711)
	codes := rng.Codes(2000, 16)
	f := newFlatWithCodes(t, codes)

	for _, k := range []int{1, 10, 100, 2500} {
		query := rng.Code(16)

		res, err := f.Search(context.Background(), query, k)
		require.NoError(t, err)

		exact := testutil.ExactTopK(query, codes, k)
		require.Len(t, res, len(exact))
		assert.Equal(t, testutil.SortedDistances(exact), testutil.SortedDistances(toTestResults(res)))
		assert.Equal(t, 1.0, testutil.ComputeRecall(exact, toTestResults(res)))

		for i, r := range res {
			assert.Equal(t, distance.Hamming(query, codes[r.ID]), r.Distance)
			if i > 0 {
				assert.GreaterOrEqual(t, r.Distance, res[i-1].Distance)
			}
		}
	}
}

func TestFlat_SearchNearDuplicate(t *testing.T) {
	rng := testutil.NewRNG(1)
	codes := rng.Codes(500, 8)
	f := newFlatWithCodes(t, codes)

	query := rng.FlipBits(codes[123], 2)
	res, err := f.Search(context.Background(), query, 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, uint32(123), res[0].ID)
	assert.Equal(t, 2, res[0].Distance)
}

func TestFlat_SearchWithFilter(t *testing.T) {
	codes := [][]byte{{0x00}, {0x01}, {0x03}, {0x07}, {0x0F}}
	f := newFlatWithCodes(t, codes)

	res, err := f.Search(context.Background(), []byte{0x00}, 2, WithFilter(roaring.BitmapOf(2, 4)))
	require.NoError(t, err)
	assert.Equal(t, []Result{{ID: 2, Distance: 2}, {ID: 4, Distance: 4}}, res)

	res, err = f.Search(context.Background(), []byte{0x00}, 2, WithFilter(roaring.New()))
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = f.Search(context.Background(), []byte{0x00}, 2, WithFilter(nil))
	require.NoError(t, err)
	assert.Equal(t, []Result{{ID: 0, Distance: 0}, {ID: 1, Distance: 1}}, res)
}

func TestFlat_SearchCanceled(t *testing.T) {
	f := newFlatWithCodes(t, testutil.NewRNG(2).Codes(10, 4))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Search(ctx, make([]byte, 4), 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlat_SearchBatch(t *testing.T) {
	rng := testutil.NewRNG(3)
	codes := rng.Codes(300, 8)
	f := newFlatWithCodes(t, codes, WithWorkers(3))

	queries := rng.Codes(20, 8)
	batch, err := f.SearchBatch(context.Background(), queries, 5)
	require.NoError(t, err)
	require.Len(t, batch, len(queries))

	for i, q := range queries {
		exact := testutil.ExactTopK(q, codes, 5)
		assert.Equal(t, testutil.SortedDistances(exact), testutil.SortedDistances(toTestResults(batch[i])))
	}

	_, err = f.SearchBatch(context.Background(), queries, 0)
	assert.ErrorIs(t, err, ErrInvalidK)

	bad := append(queries[:2:2], []byte{1})
	_, err = f.SearchBatch(context.Background(), bad, 5)
	var lm *ErrCodeLengthMismatch
	assert.ErrorAs(t, err, &lm)
}

func TestFlat_Observability(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	codes := testutil.NewRNG(5).Codes(50, 4)
	f := newFlatWithCodes(t, codes, WithLogger(logger), WithMetricsCollector(metrics))

	_, err := f.Search(context.Background(), codes[0], 3)
	require.NoError(t, err)
	_, err = f.Search(context.Background(), codes[0], 0)
	require.Error(t, err)
	_, err = f.SearchBatch(context.Background(), codes[:4], 2)
	require.NoError(t, err)
	_, err = f.Add(context.Background(), []byte{1})
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(51), stats.AddCount)
	assert.Equal(t, int64(1), stats.AddErrors)
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(1), stats.BatchSearchCount)
	assert.Equal(t, int64(4), stats.BatchSearchItems)
	assert.Equal(t, int64(0), stats.BatchSearchFailed)

	out := buf.String()
	assert.Contains(t, out, "search completed")
	assert.Contains(t, out, "search failed")
	assert.Contains(t, out, "batch search completed")
	assert.Contains(t, out, "add failed")
	assert.Contains(t, out, "bits=32")
}

func TestFlat_NilOptions(t *testing.T) {
	f, err := New(8, WithLogger(nil), WithMetricsCollector(nil), WithWorkers(-1))
	require.NoError(t, err)

	_, err = f.Add(context.Background(), []byte{1})
	require.NoError(t, err)
	res, err := f.Search(context.Background(), []byte{1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []Result{{ID: 0, Distance: 0}}, res)
}
