package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextRendersHeaderAndBody(t *testing.T) {
	got := string(Text(KindTemplate, "Jane Doe", "- point one\n- point two"))
	if !strings.HasPrefix(got, "SPEECH TEMPLATE\nSpeaker: Jane Doe\n") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("=", 60)) {
		t.Fatalf("missing separator")
	}
	if !strings.HasSuffix(got, "- point one\n- point two") {
		t.Fatalf("missing body: %q", got)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(KindSpeech, "Jane Doe", "txt"); got != "Jane_Doe_speech.txt" {
		t.Fatalf("unexpected filename %q", got)
	}
	if got := Filename(KindPrompt, "", "docx"); got != "Speaker_prompt.docx" {
		t.Fatalf("unexpected fallback filename %q", got)
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindTemplate, KindSpeech, KindRemarks, KindPrompt} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if Kind("transcript").Valid() {
		t.Fatalf("unknown kind accepted")
	}
}

func TestDocxWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	body := "# Opening\n- We delivered **strong** results\nPlain closing line"
	if err := Docx(KindTemplate, "Jane Doe", body, path); err != nil {
		t.Fatalf("docx export failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("docx file is empty")
	}
}
