package session

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	st, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if st.Phase != PhaseInitial || st.Progress != "Ready" {
		t.Fatalf("unexpected initial state: %+v", st)
	}

	st.SpeakerRemarks = "remarks"
	st.Template = "template"
	st.Phase = PhaseTemplate
	if err := store.Put(ctx, st); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Template != "template" || got.Phase != PhaseTemplate {
		t.Fatalf("state not stored: %+v", got)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	got, _ = store.Get(ctx)
	if got.Template != "" || got.Phase != PhaseInitial {
		t.Fatalf("reset did not clear state: %+v", got)
	}
}

func TestResetForUploadInvalidatesDerivedArtifacts(t *testing.T) {
	st := NewState()
	st.UploadedFile = "uploads/old.pdf"
	st.TranscriptText = "old transcript"
	st.SpeakerRemarks = "old remarks"
	st.SpeakerName = "Jane Doe"
	st.Template = "old template"
	st.Speech = "old speech"
	st.Prompt = "old prompt"
	st.Phase = PhaseSpeech

	st.ResetForUpload("uploads/new.pdf")

	if st.UploadedFile != "uploads/new.pdf" {
		t.Fatalf("new upload not recorded: %q", st.UploadedFile)
	}
	if st.TranscriptText != "" || st.SpeakerRemarks != "" || st.Template != "" || st.Speech != "" || st.Prompt != "" {
		t.Fatalf("derived artifacts survived document replacement: %+v", st)
	}
	if st.Phase != PhaseInitial {
		t.Fatalf("phase not reset: %q", st.Phase)
	}
}

func TestStoreCopiesAreIndependent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	st, _ := store.Get(ctx)
	st.Template = "mutated locally"

	fresh, _ := store.Get(ctx)
	if fresh.Template != "" {
		t.Fatalf("local mutation leaked into store")
	}
}
