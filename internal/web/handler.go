package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"speechwright/internal/config"
	"speechwright/internal/export"
	"speechwright/internal/llm"
	"speechwright/internal/session"
	"speechwright/internal/transcript"
	"speechwright/internal/validate"
)

// TextExtractor is the PDF boundary as the handler sees it. Production uses
// transcript.Processor; tests inject a stub.
type TextExtractor interface {
	Extract(path string) (transcript.Document, error)
	Validate(path string) error
}

type Handler struct {
	Config    config.Config
	LLM       *llm.Manager
	Sessions  session.Store
	Extractor TextExtractor
}

func NewHandler(cfg config.Config, mgr *llm.Manager, sessions session.Store, extractor TextExtractor) *Handler {
	return &Handler{
		Config:    cfg,
		LLM:       mgr,
		Sessions:  sessions,
		Extractor: extractor,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/upload", h.handleUpload)
	mux.HandleFunc("/v1/providers", h.handleProviders)
	mux.HandleFunc("/v1/providers/select", h.handleSelectProvider)
	mux.HandleFunc("/v1/template", h.handleGenerateTemplate)
	mux.HandleFunc("/v1/speech", h.handleGenerateSpeech)
	mux.HandleFunc("/v1/status", h.handleStatus)
	mux.HandleFunc("/v1/results", h.handleResults)
	mux.HandleFunc("/v1/export/", h.handleExport)
	mux.HandleFunc("/v1/reset", h.handleReset)
}

// handleUpload receives the transcript PDF. A new document invalidates the
// whole session: remarks, template, and speech are all derived from the
// document they were extracted from.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.Config.Upload.MaxBytes)
	if err := r.ParseMultipartForm(h.Config.Upload.MaxBytes); err != nil {
		httpError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}
	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		httpError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()
	if err := validate.UploadFilename(header.Filename); err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	path := filepath.Join(h.Config.Upload.Dir, uuid.New().String()+".pdf")
	dst, err := os.Create(path)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		_ = os.Remove(path)
		httpError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	dst.Close()

	if err := h.Extractor.Validate(path); err != nil {
		_ = os.Remove(path)
		httpError(w, http.StatusBadRequest, "invalid PDF file: "+err.Error())
		return
	}

	ctx := r.Context()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st.UploadedFile != "" && st.UploadedFile != path {
		_ = os.Remove(st.UploadedFile)
	}
	st.ResetForUpload(path)
	if err := h.Sessions.Put(ctx, st); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "file uploaded successfully",
		"filename": header.Filename,
	})
}

func (h *Handler) handleProviders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"providers": h.LLM.Available(),
		"current":   h.LLM.Active(),
	})
}

func (h *Handler) handleSelectProvider(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := decodeJSON(r, selectProviderSchema)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	name, _ := body["provider"].(string)
	if err := h.LLM.Select(name); err != nil {
		if errors.Is(err, llm.ErrUnknownProvider) {
			httpError(w, http.StatusBadRequest,
				"provider "+name+" not available, available: "+strings.Join(h.LLM.Available(), ", "))
			return
		}
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "AI provider switched to: " + name,
		"current_provider": name,
	})
}

// handleGenerateTemplate kicks off the chained extract-then-summarize job
// on a background goroutine; clients poll /v1/status.
func (h *Handler) handleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := decodeJSON(r, templateRequestSchema)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	rawName, _ := body["speaker_name"].(string)
	speakerName, err := validate.SpeakerName(rawName)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(h.LLM.Available()) == 0 {
		httpError(w, http.StatusServiceUnavailable, "AI services not available, please configure API keys")
		return
	}

	ctx := r.Context()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st.Processing {
		httpError(w, http.StatusConflict, "another operation is in progress")
		return
	}
	if st.UploadedFile == "" {
		httpError(w, http.StatusBadRequest, "please upload a PDF file first")
		return
	}

	st.Processing = true
	st.CurrentTask = "template_generation"
	st.Progress = "Processing PDF..."
	st.ErrorMessage = ""
	if err := h.Sessions.Put(ctx, st); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	go h.runTemplateJob(speakerName)
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": "template generation started",
		"status":  "processing",
	})
}

func (h *Handler) runTemplateJob(speakerName string) {
	// The request context dies with the HTTP response; the job owns its
	// own lifetime and runs to completion or to the vendor timeout.
	ctx := context.Background()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		log.Printf("template job: session load failed: %v", err)
		return
	}

	doc, err := h.Extractor.Extract(st.UploadedFile)
	if err != nil {
		h.failJob(ctx, st, err)
		return
	}
	st.TranscriptText = doc.FullText
	st.Progress = "Extracting speaker prepared remarks..."
	_ = h.Sessions.Put(ctx, st)

	remarks, err := h.LLM.ExtractPreparedRemarks(ctx, doc.FullText, speakerName)
	if err != nil {
		h.failJob(ctx, st, err)
		return
	}
	st.SpeakerRemarks = remarks
	st.SpeakerName = speakerName
	st.Progress = "Generating template..."
	_ = h.Sessions.Put(ctx, st)

	template, err := h.LLM.GenerateTemplate(ctx, remarks, speakerName)
	if err != nil {
		h.failJob(ctx, st, err)
		return
	}
	st.Template = template
	st.Phase = session.PhaseTemplate
	st.Progress = "Template generated successfully"
	st.Processing = false
	st.CurrentTask = ""
	if err := h.Sessions.Put(ctx, st); err != nil {
		log.Printf("template job: session store failed: %v", err)
	}
}

func (h *Handler) handleGenerateSpeech(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := decodeJSON(r, speechRequestSchema)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	rawMessages, _ := body["key_messages"].(string)
	keyMessages, err := validate.KeyMessages(rawMessages)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(h.LLM.Available()) == 0 {
		httpError(w, http.StatusServiceUnavailable, "AI services not available, please configure API keys")
		return
	}

	ctx := r.Context()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st.Processing {
		httpError(w, http.StatusConflict, "another operation is in progress")
		return
	}
	if st.SpeakerRemarks == "" || st.SpeakerName == "" {
		httpError(w, http.StatusBadRequest, "please generate a template first to extract prepared remarks")
		return
	}

	st.Processing = true
	st.CurrentTask = "speech_generation"
	st.Progress = "Generating custom speech..."
	st.ErrorMessage = ""
	if err := h.Sessions.Put(ctx, st); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	go h.runSpeechJob(keyMessages)
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": "speech generation started",
		"status":  "processing",
	})
}

func (h *Handler) runSpeechJob(keyMessages string) {
	ctx := context.Background()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		log.Printf("speech job: session load failed: %v", err)
		return
	}

	speech, prompt, err := h.LLM.GenerateCustomSpeech(ctx, st.SpeakerRemarks, keyMessages, st.SpeakerName)
	if err != nil {
		h.failJob(ctx, st, err)
		return
	}
	st.Speech = speech
	st.Prompt = prompt
	st.Phase = session.PhaseSpeech
	st.Progress = "Custom speech generated successfully"
	st.Processing = false
	st.CurrentTask = ""
	if err := h.Sessions.Put(ctx, st); err != nil {
		log.Printf("speech job: session store failed: %v", err)
	}
}

func (h *Handler) failJob(ctx context.Context, st session.State, cause error) {
	log.Printf("%s failed: %v", st.CurrentTask, cause)
	st.ErrorMessage = cause.Error()
	st.Progress = "Error occurred"
	st.Processing = false
	st.CurrentTask = ""
	if err := h.Sessions.Put(ctx, st); err != nil {
		log.Printf("session store failed while recording error: %v", err)
	}
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	st, err := h.Sessions.Get(r.Context())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"is_processing":       st.Processing,
		"current_task":        st.CurrentTask,
		"progress":            st.Progress,
		"error_message":       st.ErrorMessage,
		"has_template":        st.Template != "",
		"has_speech":          st.Speech != "",
		"has_speaker_content": st.SpeakerRemarks != "",
		"has_prompt":          st.Prompt != "",
		"current_phase":       st.Phase,
		"speaker_name":        st.SpeakerName,
	})
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	st, err := h.Sessions.Get(r.Context())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var output string
	switch {
	case st.Phase == session.PhaseTemplate && st.Template != "":
		output = st.Template
	case st.Phase == session.PhaseSpeech && st.Speech != "":
		output = st.Speech
	default:
		httpError(w, http.StatusNotFound, "no results available")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"generated_output": output,
		"speaker_content":  st.SpeakerRemarks,
		"speaker_name":     st.SpeakerName,
		"generated_prompt": st.Prompt,
		"current_phase":    st.Phase,
	})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	kind := export.Kind(strings.TrimPrefix(r.URL.Path, "/v1/export/"))
	if !kind.Valid() {
		httpError(w, http.StatusBadRequest, "invalid content type")
		return
	}
	st, err := h.Sessions.Get(r.Context())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var body string
	switch kind {
	case export.KindTemplate:
		body = st.Template
	case export.KindSpeech:
		body = st.Speech
	case export.KindRemarks:
		body = st.SpeakerRemarks
	case export.KindPrompt:
		body = st.Prompt
	}
	if body == "" {
		httpError(w, http.StatusNotFound, "content not available")
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "txt":
		name := export.Filename(kind, st.SpeakerName, "txt")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		_, _ = w.Write(export.Text(kind, st.SpeakerName, body))
	case "docx":
		name := export.Filename(kind, st.SpeakerName, "docx")
		tmp := filepath.Join(os.TempDir(), uuid.New().String()+"_"+name)
		if err := export.Docx(kind, st.SpeakerName, body, tmp); err != nil {
			httpError(w, http.StatusInternalServerError, "docx export failed: "+err.Error())
			return
		}
		defer os.Remove(tmp)
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		http.ServeFile(w, r, tmp)
	default:
		httpError(w, http.StatusBadRequest, "unsupported export format")
	}
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	st, err := h.Sessions.Get(ctx)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if st.UploadedFile != "" {
		_ = os.Remove(st.UploadedFile)
	}
	if err := h.Sessions.Reset(ctx); err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "application reset successfully"})
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
