package timeline

import (
	"testing"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, clips []models.Clip) (*Editor, *[][]models.Clip) {
	t.Helper()
	var emitted [][]models.Clip
	editor := NewEditor(clips, func(updated []models.Clip) {
		emitted = append(emitted, updated)
	})
	return editor, &emitted
}

func threeClips() []models.Clip {
	return []models.Clip{
		clipWithRange("a", 0, 5),
		clipWithRange("b", 2, 4),
		clipWithRange("c", 10, 20),
	}
}

func assetIDs(clips []models.Clip) []string {
	ids := make([]string, len(clips))
	for i, clip := range clips {
		ids[i] = clip.AssetID
	}
	return ids
}

func TestEditor_Reorder(t *testing.T) {
	editor, emitted := newTestEditor(t, threeClips())

	err := editor.Reorder("c", 0)
	require.NoError(t, err)

	clips := editor.Clips()
	assert.Equal(t, []string{"c", "a", "b"}, assetIDs(clips))

	// Start times recomputed from the new order
	assert.InDelta(t, 0, clips[0].StartTime, 0.001)
	assert.InDelta(t, 10, clips[1].StartTime, 0.001)
	assert.InDelta(t, 15, clips[2].StartTime, 0.001)

	// Trim values travel with the clip
	assert.InDelta(t, 10, clips[0].SourceInPoint, 0.001)
	assert.InDelta(t, 20, clips[0].SourceOutPoint, 0.001)

	require.Len(t, *emitted, 1)
	assert.Equal(t, clips, (*emitted)[0])
}

func TestEditor_ReorderPreservesSet(t *testing.T) {
	editor, _ := newTestEditor(t, threeClips())

	require.NoError(t, editor.Reorder("a", 2))
	require.NoError(t, editor.Reorder("b", 0))

	clips := editor.Clips()
	assert.ElementsMatch(t, []string{"a", "b", "c"}, assetIDs(clips))
	assert.Len(t, clips, 3)
}

func TestEditor_ReorderClampsTarget(t *testing.T) {
	editor, _ := newTestEditor(t, threeClips())

	require.NoError(t, editor.Reorder("a", 99))
	assert.Equal(t, []string{"b", "c", "a"}, assetIDs(editor.Clips()))

	require.NoError(t, editor.Reorder("a", -5))
	assert.Equal(t, []string{"a", "b", "c"}, assetIDs(editor.Clips()))
}

func TestEditor_ReorderUnknownClip(t *testing.T) {
	editor, emitted := newTestEditor(t, threeClips())

	err := editor.Reorder("missing", 0)
	assert.Error(t, err)
	assert.Empty(t, *emitted, "failed gesture should not emit")
}

func TestEditor_TrimCoupling(t *testing.T) {
	t.Run("in point pushes out point", func(t *testing.T) {
		editor, _ := newTestEditor(t, []models.Clip{clipWithRange("a", 0, 5)})

		// in = out - 0.2 forces out to in + 0.5
		require.NoError(t, editor.Trim("a", TrimFieldIn, 4.8))

		clip := editor.Clips()[0]
		assert.InDelta(t, 4.8, clip.SourceInPoint, 0.001)
		assert.InDelta(t, 5.3, clip.SourceOutPoint, 0.001)
		assert.InDelta(t, 0.5, clip.TimelineDuration, 0.001)
	})

	t.Run("out point pulls in point", func(t *testing.T) {
		editor, _ := newTestEditor(t, []models.Clip{clipWithRange("a", 4, 10)})

		require.NoError(t, editor.Trim("a", TrimFieldOut, 4.2))

		clip := editor.Clips()[0]
		assert.InDelta(t, 3.7, clip.SourceInPoint, 0.001)
		assert.InDelta(t, 4.2, clip.SourceOutPoint, 0.001)
		assert.InDelta(t, 0.5, clip.TimelineDuration, 0.001)
	})

	t.Run("out point near zero floors in point", func(t *testing.T) {
		editor, _ := newTestEditor(t, []models.Clip{clipWithRange("a", 0, 5)})

		require.NoError(t, editor.Trim("a", TrimFieldOut, 0.1))

		clip := editor.Clips()[0]
		assert.InDelta(t, 0, clip.SourceInPoint, 0.001)
		assert.InDelta(t, 0.5, clip.SourceOutPoint, 0.001)
	})

	t.Run("negative in point clamped", func(t *testing.T) {
		editor, _ := newTestEditor(t, []models.Clip{clipWithRange("a", 2, 5)})

		require.NoError(t, editor.Trim("a", TrimFieldIn, -3))

		clip := editor.Clips()[0]
		assert.InDelta(t, 0, clip.SourceInPoint, 0.001)
		assert.InDelta(t, 5, clip.SourceOutPoint, 0.001)
	})
}

func TestEditor_TrimShiftsFollowingClips(t *testing.T) {
	editor, _ := newTestEditor(t, threeClips())

	// Lengthen the first clip from 5s to 8s
	require.NoError(t, editor.Trim("a", TrimFieldOut, 8))

	clips := editor.Clips()
	assert.InDelta(t, 8, clips[1].StartTime, 0.001)
	assert.InDelta(t, 10, clips[2].StartTime, 0.001)
}

func TestEditor_Remove(t *testing.T) {
	editor, emitted := newTestEditor(t, threeClips())

	require.NoError(t, editor.Remove("b"))

	clips := editor.Clips()
	assert.Equal(t, []string{"a", "c"}, assetIDs(clips))

	// Gap closed
	assert.InDelta(t, 0, clips[0].StartTime, 0.001)
	assert.InDelta(t, 5, clips[1].StartTime, 0.001)

	require.Len(t, *emitted, 1)
}

func TestEditor_RemoveUnknownClip(t *testing.T) {
	editor, _ := newTestEditor(t, threeClips())
	assert.Error(t, editor.Remove("missing"))
	assert.Len(t, editor.Clips(), 3)
}

func TestEditor_Append(t *testing.T) {
	editor, emitted := newTestEditor(t, threeClips())

	editor.Append(clipWithRange("d", 1, 3))

	clips := editor.Clips()
	require.Len(t, clips, 4)
	assert.Equal(t, "d", clips[3].AssetID)
	assert.InDelta(t, 17, clips[3].StartTime, 0.001)
	assert.InDelta(t, 2, clips[3].TimelineDuration, 0.001)
	require.Len(t, *emitted, 1)
}

func TestEditor_NormalizesOnEntry(t *testing.T) {
	clips := []models.Clip{
		{AssetID: "a", SourceInPoint: -1, SourceOutPoint: 3, StartTime: 50},
		{AssetID: "b", SourceInPoint: 5, SourceOutPoint: 2},
	}

	editor, _ := newTestEditor(t, clips)

	got := editor.Clips()
	assert.InDelta(t, 0, got[0].StartTime, 0.001)
	assert.InDelta(t, 0, got[0].SourceInPoint, 0.001)
	assert.InDelta(t, 3, got[1].StartTime, 0.001)
	assert.InDelta(t, 5.5, got[1].SourceOutPoint, 0.001)
}
