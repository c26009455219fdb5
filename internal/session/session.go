// Package session holds the per-session working state: the uploaded
// document, the extracted remarks, and the artifacts derived from them.
package session

import "context"

type Phase string

const (
	PhaseInitial  Phase = "initial"
	PhaseTemplate Phase = "template"
	PhaseSpeech   Phase = "speech"
)

// State is everything one working session accumulates. The template,
// speech, and prompt are derived from SpeakerRemarks; replacing the source
// document discards them all (see ResetForUpload).
type State struct {
	UploadedFile   string `json:"uploaded_file"`
	TranscriptText string `json:"transcript_text"`
	SpeakerRemarks string `json:"speaker_remarks"`
	SpeakerName    string `json:"speaker_name"`
	Template       string `json:"template"`
	Speech         string `json:"speech"`
	Prompt         string `json:"prompt"`
	Phase          Phase  `json:"phase"`
	Progress       string `json:"progress"`
	Processing     bool   `json:"processing"`
	CurrentTask    string `json:"current_task"`
	ErrorMessage   string `json:"error_message"`
}

func NewState() State {
	return State{Phase: PhaseInitial, Progress: "Ready"}
}

// ResetForUpload clears the transcript and every downstream artifact while
// recording the new source document. Derived artifacts are semantically
// tied to the document they came from and must not survive it.
func (s *State) ResetForUpload(path string) {
	*s = NewState()
	s.UploadedFile = path
}

// Store abstracts where the single working session lives. Both
// implementations hand out copies; callers mutate and Put back.
type Store interface {
	Get(ctx context.Context) (State, error)
	Put(ctx context.Context, st State) error
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}
