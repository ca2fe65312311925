package playback

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// State is the sequencer's current playback state
type State string

const (
	StateIdle         State = "idle"
	StatePlayingVideo State = "playing_video"
	StatePlayingImage State = "playing_image"
	StatePaused       State = "paused"
	StateEnded        State = "ended"
)

// Sequencer walks a playback plan segment by segment, driving the
// single visual surface and the per-scene audio mixer. It is the sole
// arbiter of the current position: both advancement sources (the video
// surface's media clock and the wall-clock timer for stills) arrive as
// completion signals, and a generation counter guarantees a stale
// signal can never advance a newer state.
//
// Audio is retriggered on scene entry only; segments within a scene
// share one continuous mix session. Pausing stops the mix outright and
// resuming restarts it from scene start — a deliberate preview-tool
// trade-off in favor of restart over seek-and-resync.
type Sequencer struct {
	mu      sync.Mutex
	surface VisualSurface
	mixer   AudioMixer

	scenes []models.Scene
	plan   [][]models.PlaybackSegment

	state        State
	sceneIndex   int
	segmentIndex int

	// resumeState is the playing state to re-enter from Paused
	resumeState State

	// audioScene is the scene whose mix session is running, -1 if none
	audioScene int

	// audioCancel tears down the running mix session's context
	audioCancel context.CancelFunc

	pending    CompletionSignal
	generation uint64

	ctx context.Context
}

// NewSequencer creates an idle sequencer bound to a visual surface and
// an audio mixer. Call Load before Play.
func NewSequencer(surface VisualSurface, mixer AudioMixer) *Sequencer {
	return &Sequencer{
		surface:    surface,
		mixer:      mixer,
		state:      StateIdle,
		audioScene: -1,
	}
}

// Load replaces the plan and resets the sequencer to the start. Any
// active playback is stopped.
func (s *Sequencer) Load(scenes []models.Scene, plan [][]models.PlaybackSegment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.stopAudioLocked()
	s.surface.Stop()

	s.scenes = scenes
	s.plan = plan
	s.state = StateIdle
	s.sceneIndex = 0
	s.segmentIndex = 0
}

// Play starts playback from the current position, or resumes from a
// pause. Playing after the plan has ended restarts from the first
// scene. A no-op while already playing.
func (s *Sequencer) Play(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePaused:
		s.ctx = ctx
		s.resumeLocked()
	case StateIdle, StateEnded:
		s.ctx = ctx
		if s.state == StateEnded {
			s.sceneIndex = 0
			s.segmentIndex = 0
		}
		s.playCurrentLocked()
	}
}

// Pause halts playback: the pending completion signal is disarmed, the
// visual surface pauses in place, and the audio mix stops. A no-op
// unless currently playing.
func (s *Sequencer) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlayingVideo && s.state != StatePlayingImage {
		return
	}

	s.resumeState = s.state
	s.cancelPendingLocked()
	s.surface.Pause()
	s.stopAudioLocked()
	s.state = StatePaused

	log.Printf("[DEBUG] Playback paused at scene %d segment %d", s.sceneIndex, s.segmentIndex)
}

// SkipForward jumps to the next scene's first segment, restarting both
// the visual surface and the audio mix. Clamped at the last scene.
func (s *Sequencer) SkipForward() {
	s.skipTo(s.currentScene() + 1)
}

// SkipBackward jumps to the previous scene's first segment, restarting
// both the visual surface and the audio mix. Clamped at the first
// scene.
func (s *Sequencer) SkipBackward() {
	s.skipTo(s.currentScene() - 1)
}

// Stop halts playback entirely and returns the sequencer to idle at
// the current position
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.stopAudioLocked()
	s.surface.Stop()
	s.state = StateIdle
}

// CurrentSceneIndex returns the scene the sequencer is positioned on
func (s *Sequencer) CurrentSceneIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clampSceneLocked(s.sceneIndex)
}

// CurrentSegmentLabel returns the display label of the current segment,
// or empty if there is none
func (s *Sequencer) CurrentSegmentLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sceneIndex >= len(s.plan) {
		return ""
	}
	segments := s.plan[s.sceneIndex]
	if s.segmentIndex >= len(segments) {
		return ""
	}
	return segments[s.segmentIndex].Label
}

// IsPlaying returns true while a segment is actively playing
func (s *Sequencer) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StatePlayingVideo || s.state == StatePlayingImage
}

// State returns the sequencer's current state
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// playCurrentLocked enters the state for the current segment, skipping
// over empty scenes. Reaching the end of the plan transitions to Ended.
func (s *Sequencer) playCurrentLocked() {
	for s.sceneIndex < len(s.plan) && len(s.plan[s.sceneIndex]) == 0 {
		s.sceneIndex++
		s.segmentIndex = 0
	}

	if s.sceneIndex >= len(s.plan) {
		s.endLocked()
		return
	}

	segment := s.plan[s.sceneIndex][s.segmentIndex]

	// Audio follows scene boundaries, not segments
	if s.audioScene != s.sceneIndex {
		s.startSceneAudioLocked()
	}

	if segment.IsVideo() {
		signal, err := s.surface.PlayVideo(s.ctx, segment)
		if err != nil {
			log.Printf("[ERROR] Failed to start video segment %d/%d (%s): %v",
				s.sceneIndex, s.segmentIndex, segment.SourceURL, err)
			s.autoPauseLocked(StatePlayingVideo)
			return
		}
		s.state = StatePlayingVideo
		s.armLocked(signal)
		return
	}

	if err := s.surface.ShowImage(s.ctx, segment); err != nil {
		log.Printf("[ERROR] Failed to show image segment %d/%d (%s): %v",
			s.sceneIndex, s.segmentIndex, segment.SourceURL, err)
		s.autoPauseLocked(StatePlayingImage)
		return
	}
	s.state = StatePlayingImage
	s.armLocked(NewTimerSignal(secondsToDuration(segment.Duration)))
}

// advanceLocked moves to the next segment, crossing into the next scene
// when the current one is exhausted
func (s *Sequencer) advanceLocked() {
	s.segmentIndex++
	if s.sceneIndex < len(s.plan) && s.segmentIndex >= len(s.plan[s.sceneIndex]) {
		s.sceneIndex++
		s.segmentIndex = 0
	}
	s.playCurrentLocked()
}

// resumeLocked re-enters the paused segment. The visual surface keeps
// its position; the scene's audio bed restarts from scene start. An
// image segment's hold timer is re-armed for its full duration.
func (s *Sequencer) resumeLocked() {
	if s.resumeState == StatePlayingVideo {
		signal, err := s.surface.Resume()
		if err != nil {
			// Held position is gone; re-enter the segment from its start
			log.Printf("[ERROR] Failed to resume video segment %d/%d: %v",
				s.sceneIndex, s.segmentIndex, err)
			s.playCurrentLocked()
			return
		}
		s.startSceneAudioLocked()
		s.state = StatePlayingVideo
		s.armLocked(signal)
		return
	}

	if s.sceneIndex >= len(s.plan) || s.segmentIndex >= len(s.plan[s.sceneIndex]) {
		s.endLocked()
		return
	}

	segment := s.plan[s.sceneIndex][s.segmentIndex]
	if err := s.surface.ShowImage(s.ctx, segment); err != nil {
		log.Printf("[ERROR] Failed to resume image segment %d/%d: %v",
			s.sceneIndex, s.segmentIndex, err)
		return
	}
	s.startSceneAudioLocked()
	s.state = StatePlayingImage
	s.armLocked(NewTimerSignal(secondsToDuration(segment.Duration)))
}

// skipTo jumps to a scene's first segment. The target is clamped to
// the plan; the surface and mix restart for the target scene.
func (s *Sequencer) skipTo(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.plan) == 0 {
		return
	}

	target = s.clampSceneLocked(target)

	s.cancelPendingLocked()
	s.stopAudioLocked()
	s.surface.Stop()

	s.sceneIndex = target
	s.segmentIndex = 0

	// Skipping while idle only repositions; anything else re-enters
	// playback for the target scene
	if s.state == StateIdle {
		return
	}

	log.Printf("[DEBUG] Skipping to scene %d", target)
	s.playCurrentLocked()
}

// autoPauseLocked parks the sequencer after a media failure so the
// transport stays responsive instead of stalling or crashing
func (s *Sequencer) autoPauseLocked(wouldBe State) {
	s.resumeState = wouldBe
	s.cancelPendingLocked()
	s.stopAudioLocked()
	s.surface.Stop()
	s.state = StatePaused
}

// endLocked halts playback after the last scene; the plan does not loop
func (s *Sequencer) endLocked() {
	s.cancelPendingLocked()
	s.stopAudioLocked()
	s.surface.Stop()
	s.state = StateEnded

	log.Printf("[DEBUG] Playback ended after %d scene(s)", len(s.plan))
}

// startSceneAudioLocked stops any previous scene's mix session and
// starts the current scene's. Each session runs under its own
// cancellable context: a pause or skip that lands before the mix
// goroutine gets scheduled cancels the session, so the mix can never
// come up in a state that already tore it down. Mixing is best-effort
// relative to the visual track: failures are logged and never block
// playback.
func (s *Sequencer) startSceneAudioLocked() {
	s.stopAudioLocked()
	s.audioScene = s.sceneIndex

	if s.sceneIndex >= len(s.scenes) {
		return
	}

	config := SceneAudio(s.scenes[s.sceneIndex])
	if config.IsEmpty() {
		return
	}

	ctx, cancel := context.WithCancel(s.ctx)
	s.audioCancel = cancel
	sceneIndex := s.sceneIndex
	go func() {
		s.mu.Lock()
		superseded := ctx.Err() != nil
		s.mu.Unlock()
		if superseded {
			return
		}
		if err := s.mixer.PlayScene(ctx, config); err != nil && ctx.Err() == nil {
			log.Printf("[ERROR] Audio mix failed for scene %d: %v", sceneIndex, err)
		}
	}()
}

// stopAudioLocked halts the running mix session, if any, and cancels
// its context so a session that has not started yet stays down
func (s *Sequencer) stopAudioLocked() {
	if s.audioCancel != nil {
		s.audioCancel()
		s.audioCancel = nil
	}
	if s.audioScene >= 0 {
		s.mixer.Stop()
		s.audioScene = -1
	}
}

// armLocked installs the completion signal for the current segment and
// watches it on a goroutine. The generation counter is bumped by
// cancelPendingLocked, so a watcher from a superseded state finds its
// generation stale and exits without advancing.
func (s *Sequencer) armLocked(signal CompletionSignal) {
	s.generation++
	generation := s.generation
	s.pending = signal

	go func() {
		<-signal.Done()

		s.mu.Lock()
		defer s.mu.Unlock()
		if generation != s.generation {
			return
		}
		s.pending = nil
		s.advanceLocked()
	}()
}

// cancelPendingLocked disarms the outstanding completion signal. The
// generation bump makes any already-fired watcher a no-op.
func (s *Sequencer) cancelPendingLocked() {
	s.generation++
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

func (s *Sequencer) currentScene() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clampSceneLocked(s.sceneIndex)
}

func (s *Sequencer) clampSceneLocked(index int) int {
	if index < 0 {
		return 0
	}
	if len(s.plan) > 0 && index > len(s.plan)-1 {
		return len(s.plan) - 1
	}
	if len(s.plan) == 0 {
		return 0
	}
	return index
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
