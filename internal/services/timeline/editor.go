package timeline

import (
	"fmt"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// TrimField names the trim point being edited
type TrimField string

const (
	TrimFieldIn  TrimField = "source_in_point"
	TrimFieldOut TrimField = "source_out_point"
)

// Editor applies reorder/trim/remove gestures to one scene's clip list.
// Every mutation re-normalizes the list and emits the full updated list
// to the owning scope via the onChange callback; the owner is
// responsible for persisting it. The editor never patches derived
// fields in place.
//
// Uniqueness of asset IDs within the list is the owner's precondition
// and is not enforced here.
type Editor struct {
	clips    []models.Clip
	onChange func([]models.Clip)
}

// NewEditor creates an editor over a clip list. The list is normalized
// on entry so stale derived fields from direct edits cannot leak into
// the first gesture. onChange may be nil.
func NewEditor(clips []models.Clip, onChange func([]models.Clip)) *Editor {
	return &Editor{
		clips:    Normalize(clips),
		onChange: onChange,
	}
}

// Clips returns the current normalized clip list
func (e *Editor) Clips() []models.Clip {
	out := make([]models.Clip, len(e.clips))
	copy(out, e.clips)
	return out
}

// Reorder splices the identified clip out of the list and re-inserts it
// at toIndex. The clip keeps its identity and trim values but not its
// position; all start times are recomputed.
func (e *Editor) Reorder(assetID string, toIndex int) error {
	from := e.indexOf(assetID)
	if from < 0 {
		return fmt.Errorf("clip %s not found", assetID)
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(e.clips)-1 {
		toIndex = len(e.clips) - 1
	}

	moved := e.clips[from]
	rest := append(e.clips[:from:from], e.clips[from+1:]...)

	reordered := make([]models.Clip, 0, len(e.clips))
	reordered = append(reordered, rest[:toIndex]...)
	reordered = append(reordered, moved)
	reordered = append(reordered, rest[toIndex:]...)

	e.commit(reordered)
	return nil
}

// Trim updates one trim point on the identified clip. If the edit would
// leave the clip shorter than MinClipDuration, the opposite point is
// pushed to maintain the floor: trimming the in point past out-0.5
// pushes the out point forward, and trimming the out point below
// in+0.5 pulls the in point back (floored at 0).
func (e *Editor) Trim(assetID string, field TrimField, value float64) error {
	idx := e.indexOf(assetID)
	if idx < 0 {
		return fmt.Errorf("clip %s not found", assetID)
	}

	clip := e.clips[idx]

	switch field {
	case TrimFieldIn:
		if value < 0 {
			value = 0
		}
		clip.SourceInPoint = value
		if clip.SourceOutPoint < clip.SourceInPoint+MinClipDuration {
			clip.SourceOutPoint = clip.SourceInPoint + MinClipDuration
		}
	case TrimFieldOut:
		clip.SourceOutPoint = value
		if clip.SourceOutPoint < clip.SourceInPoint+MinClipDuration {
			clip.SourceInPoint = clip.SourceOutPoint - MinClipDuration
			if clip.SourceInPoint < 0 {
				clip.SourceInPoint = 0
				clip.SourceOutPoint = MinClipDuration
			}
		}
	default:
		return fmt.Errorf("unknown trim field %q", field)
	}

	updated := e.Clips()
	updated[idx] = clip
	e.commit(updated)
	return nil
}

// Remove deletes the identified clip; the remaining clips re-normalize
// to close the gap.
func (e *Editor) Remove(assetID string) error {
	idx := e.indexOf(assetID)
	if idx < 0 {
		return fmt.Errorf("clip %s not found", assetID)
	}

	e.commit(append(e.clips[:idx:idx], e.clips[idx+1:]...))
	return nil
}

// Append adds a clip to the end of the timeline
func (e *Editor) Append(clip models.Clip) {
	e.commit(append(e.Clips(), clip))
}

func (e *Editor) indexOf(assetID string) int {
	for i, clip := range e.clips {
		if clip.AssetID == assetID {
			return i
		}
	}
	return -1
}

func (e *Editor) commit(clips []models.Clip) {
	e.clips = Normalize(clips)
	if e.onChange != nil {
		e.onChange(e.Clips())
	}
}
