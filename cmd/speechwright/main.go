package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"speechwright/internal/config"
	"speechwright/internal/export"
	"speechwright/internal/llm"
	"speechwright/internal/transcript"
	"speechwright/internal/validate"
)

// speechwright runs the pipeline from the terminal: extract a speaker's
// prepared remarks from a transcript PDF, summarize them into a style
// template, or generate a custom speech from key messages.
func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	cfg, err := config.Load(os.Getenv("SW_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	mgr := llm.NewManager(cfg)

	switch cmd {
	case "providers":
		runProviders(mgr)
	case "extract":
		runExtract(ctx, mgr, os.Args[2:])
	case "template":
		runTemplate(ctx, mgr, os.Args[2:])
	case "speech":
		runSpeech(ctx, mgr, os.Args[2:])
	default:
		usage()
	}
}

func runProviders(mgr *llm.Manager) {
	available := mgr.Available()
	if len(available) == 0 {
		fmt.Println("no providers configured; set OPENAI_API_KEY, CLAUDE_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")
		return
	}
	for _, name := range available {
		marker := " "
		if name == mgr.Active() {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
}

func runExtract(ctx context.Context, mgr *llm.Manager, args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	pdfPath := fs.String("pdf", "", "transcript PDF path")
	speaker := fs.String("speaker", "", "speaker name")
	provider := fs.String("provider", "", "provider to use (default: first configured)")
	out := fs.String("out", "", "write result to file instead of stdout")
	_ = fs.Parse(args)

	remarks, speakerName := extractRemarks(ctx, mgr, *pdfPath, *speaker, *provider)
	emit(*out, export.KindRemarks, speakerName, remarks)
}

func runTemplate(ctx context.Context, mgr *llm.Manager, args []string) {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	pdfPath := fs.String("pdf", "", "transcript PDF path")
	speaker := fs.String("speaker", "", "speaker name")
	provider := fs.String("provider", "", "provider to use (default: first configured)")
	out := fs.String("out", "", "write result to file instead of stdout")
	_ = fs.Parse(args)

	remarks, speakerName := extractRemarks(ctx, mgr, *pdfPath, *speaker, *provider)
	log.Printf("generating speech template...")
	template, err := mgr.GenerateTemplate(ctx, remarks, speakerName)
	if err != nil {
		log.Fatalf("template generation failed: %v", err)
	}
	emit(*out, export.KindTemplate, speakerName, template)
}

func runSpeech(ctx context.Context, mgr *llm.Manager, args []string) {
	fs := flag.NewFlagSet("speech", flag.ExitOnError)
	pdfPath := fs.String("pdf", "", "transcript PDF path")
	speaker := fs.String("speaker", "", "speaker name")
	messages := fs.String("messages", "", "key messages text")
	messagesFile := fs.String("messages-file", "", "read key messages from file")
	provider := fs.String("provider", "", "provider to use (default: first configured)")
	out := fs.String("out", "", "write result to file instead of stdout")
	showPrompt := fs.Bool("show-prompt", false, "also print the prompt sent to the model")
	_ = fs.Parse(args)

	keyMessages := *messages
	if *messagesFile != "" {
		data, err := os.ReadFile(*messagesFile)
		if err != nil {
			log.Fatalf("read key messages: %v", err)
		}
		keyMessages = string(data)
	}
	keyMessages, err := validate.KeyMessages(keyMessages)
	if err != nil {
		log.Fatalf("invalid key messages: %v", err)
	}

	remarks, speakerName := extractRemarks(ctx, mgr, *pdfPath, *speaker, *provider)
	log.Printf("generating custom speech...")
	speech, prompt, err := mgr.GenerateCustomSpeech(ctx, remarks, keyMessages, speakerName)
	if err != nil {
		log.Fatalf("speech generation failed: %v", err)
	}
	emit(*out, export.KindSpeech, speakerName, speech)
	if *showPrompt {
		fmt.Println()
		fmt.Println(string(export.Text(export.KindPrompt, speakerName, prompt)))
	}
}

func extractRemarks(ctx context.Context, mgr *llm.Manager, pdfPath, speaker, provider string) (string, string) {
	speakerName, err := validate.SpeakerName(speaker)
	if err != nil {
		log.Fatalf("invalid speaker name: %v", err)
	}
	if pdfPath == "" {
		log.Fatalf("missing -pdf")
	}
	if provider != "" {
		if err := mgr.Select(provider); err != nil {
			log.Fatalf("%v (available: %v)", err, mgr.Available())
		}
	}

	proc := transcript.Processor{}
	if err := proc.Validate(pdfPath); err != nil {
		log.Fatalf("invalid PDF: %v", err)
	}
	doc, err := proc.Extract(pdfPath)
	if err != nil {
		log.Fatalf("pdf extraction failed: %v", err)
	}
	log.Printf("extracted %d characters from %d pages", doc.TotalChars, doc.TotalPages)

	log.Printf("extracting prepared remarks for %s via %s...", speakerName, mgr.Active())
	remarks, err := mgr.ExtractPreparedRemarks(ctx, doc.FullText, speakerName)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}
	log.Printf("extracted %d characters of prepared remarks", len(remarks))
	return remarks, speakerName
}

func emit(outPath string, kind export.Kind, speakerName, body string) {
	if outPath == "" {
		fmt.Println(body)
		return
	}
	if err := os.WriteFile(outPath, export.Text(kind, speakerName, body), 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	log.Printf("wrote %s", outPath)
}

func usage() {
	fmt.Println("usage: speechwright <command> [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  providers                              list configured providers")
	fmt.Println("  extract  -pdf FILE -speaker NAME       extract prepared remarks")
	fmt.Println("  template -pdf FILE -speaker NAME       generate a speech template")
	fmt.Println("  speech   -pdf FILE -speaker NAME -messages TEXT")
	fmt.Println("                                         generate a custom speech")
}
