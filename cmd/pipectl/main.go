package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/imaging"
	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/pipeline"
	"github.com/calebmayer/textsnap/internal/quality"
	"github.com/calebmayer/textsnap/internal/strategy"
)

var rootCmd = &cobra.Command{
	Use:   "pipectl",
	Short: "Operator CLI for the textsnap OCR pipeline",
	Long: `pipectl inspects and exercises the textsnap pipeline from the
command line: assess image quality, run the OCR stages locally against a
file, enqueue jobs, and check queue depths.`,
	SilenceUsage: true,
}

var assessCmd = &cobra.Command{
	Use:   "assess [image-file]",
	Short: "Print quality metrics and the strategies that would run",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssess,
}

var runCmd = &cobra.Command{
	Use:   "run [image-file]",
	Short: "Run the OCR stages locally and print the processing result",
	Long: `Runs decode, quality assessment, strategy selection, OCR and
arbitration against a local file without touching the broker. Analysis is
skipped unless --analyze is set and OPENAI_API_KEY is configured.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocal,
}

var enqueueCmd = &cobra.Command{
	Use:   "enqueue [image-file]",
	Short: "Push a job onto the OCR queue",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEnqueue,
}

var queuesCmd = &cobra.Command{
	Use:   "queues",
	Short: "Print the depth of each pipeline queue",
	Args:  cobra.NoArgs,
	RunE:  runQueues,
}

func init() {
	rootCmd.AddCommand(assessCmd, runCmd, enqueueCmd, queuesCmd)

	assessCmd.Flags().String("hint", "", "content hint (document, screenshot, web, single_line, dense_text_enhanced)")

	runCmd.Flags().String("language", "auto", "language hint")
	runCmd.Flags().Bool("analyze", false, "also call the analysis service")
	runCmd.Flags().Int("timeout", 120, "overall timeout in seconds")

	enqueueCmd.Flags().String("text", "", "enqueue clipboard text instead of an image file")
	enqueueCmd.Flags().String("language", "auto", "language hint")
	enqueueCmd.Flags().String("hint", "", "content hint (document, screenshot, web, single_line, dense_text_enhanced)")
	enqueueCmd.Flags().Int("owner", 0, "owner id")
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func runAssess(cmd *cobra.Command, args []string) error {
	img, err := imaging.DecodeFile(args[0])
	if err != nil {
		return err
	}
	metrics := quality.Assess(img)

	hintFlag, _ := cmd.Flags().GetString("hint")
	hint := strategy.ID(hintFlag)
	if hintFlag != "" && !strategy.IsValid(hint) {
		return fmt.Errorf("unknown strategy hint %q", hintFlag)
	}
	ids := strategy.Select(metrics, hint)

	return printJSON(struct {
		Metrics    quality.Metrics `json:"metrics"`
		Strategies []strategy.ID   `json:"strategies"`
	}{metrics, ids})
}

func runLocal(cmd *cobra.Command, args []string) error {
	language, _ := cmd.Flags().GetString("language")
	analyze, _ := cmd.Flags().GetBool("analyze")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	logger := quietLogger()
	cfg := common.LoadConfig()

	engine := ocr.NewTesseractEngine(cfg.OCR.TessdataDir)
	executor := ocr.NewExecutor(engine, logger,
		ocr.WithCallTimeout(cfg.OCR.CallTimeout),
		ocr.WithParallelism(cfg.OCR.Parallelism),
	)

	var analyzer analysis.Analyzer = skipAnalyzer{}
	if analyze {
		analyzer = analysis.NewClient(analysis.Config{
			APIKey:      cfg.Analysis.APIKey,
			BaseURL:     cfg.Analysis.BaseURL,
			Model:       cfg.Analysis.Model,
			Temperature: cfg.Analysis.Temperature,
			Timeout:     cfg.Analysis.Timeout,
		}, logger)
	}

	orch := pipeline.NewOrchestrator(executor, analyzer, logger)
	job := pipeline.Job{
		JobID:        uuid.New().String(),
		SourceKind:   constants.SourceScreenshot,
		PayloadRef:   args[0],
		LanguageHint: language,
		CreatedAt:    time.Now().UTC(),
	}
	result, err := orch.Process(ctx, job)
	if err != nil {
		return err
	}
	return printJSON(result)
}

// skipAnalyzer stands in when --analyze is off.
type skipAnalyzer struct{}

func (skipAnalyzer) Analyze(context.Context, string, string) (analysis.Result, error) {
	return analysis.Result{Text: "", Model: "skipped", TokensUsed: 0}, nil
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	language, _ := cmd.Flags().GetString("language")
	hint, _ := cmd.Flags().GetString("hint")
	owner, _ := cmd.Flags().GetInt("owner")

	if hint != "" && !strategy.IsValid(strategy.ID(hint)) {
		return fmt.Errorf("unknown strategy hint %q", hint)
	}

	job := pipeline.Job{
		JobID:        uuid.New().String(),
		OwnerID:      owner,
		LanguageHint: language,
		CreatedAt:    time.Now().UTC(),
	}
	targetQueue := constants.OCRQueue
	switch {
	case text != "":
		job.SourceKind = constants.SourceClipboardText
		job.PayloadRef = text
		targetQueue = constants.TextAnalysisQueue
	case len(args) == 1:
		if ext := filepath.Ext(args[0]); !constants.IsAllowedExt(ext) {
			return fmt.Errorf("unsupported image extension %q", ext)
		}
		job.SourceKind = constants.SourceScreenshot
		job.PayloadRef = args[0]
		job.ContentHint = hint
	default:
		return fmt.Errorf("either an image file argument or --text is required")
	}

	queue, err := openQueue()
	if err != nil {
		return err
	}
	defer queue.Close()

	payload, err := job.Encode()
	if err != nil {
		return err
	}
	if err := queue.Enqueue(cmd.Context(), targetQueue, payload); err != nil {
		return err
	}
	fmt.Printf("enqueued %s onto %s\n", job.JobID, targetQueue)
	return nil
}

func runQueues(cmd *cobra.Command, args []string) error {
	queue, err := openQueue()
	if err != nil {
		return err
	}
	defer queue.Close()

	depths := make(map[string]int64, 3)
	for _, name := range []string{constants.OCRQueue, constants.TextAnalysisQueue, constants.StorageQueue} {
		n, err := queue.Depth(cmd.Context(), name)
		if err != nil {
			return err
		}
		depths[name] = n
	}
	return printJSON(depths)
}

func openQueue() (*broker.RedisQueue, error) {
	cfg := common.LoadConfig()
	return broker.NewRedisQueue(cfg.Broker.RedisURL,
		broker.WithDequeueTimeout(cfg.Broker.DequeueTimeout))
}
