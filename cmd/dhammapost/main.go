package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Weerinrada/Dhamma/internal/artifact"
	"github.com/Weerinrada/Dhamma/internal/config"
	"github.com/Weerinrada/Dhamma/internal/domain"
	"github.com/Weerinrada/Dhamma/internal/generator"
	"github.com/Weerinrada/Dhamma/internal/logger"
	"github.com/Weerinrada/Dhamma/internal/media"
	"github.com/Weerinrada/Dhamma/internal/processor"
	"github.com/Weerinrada/Dhamma/internal/session"
	"github.com/Weerinrada/Dhamma/internal/speech"
	"github.com/Weerinrada/Dhamma/internal/watcher"
	"github.com/Weerinrada/Dhamma/pkg/executor"
)

const troubleshooting = `ปัญหาที่พบบ่อย:
1. ไม่สามารถรู้จำเสียงได้ - ตรวจสอบคุณภาพเสียง ลดเสียง noise พูดชัดเจนขึ้น
2. API Error - ตรวจสอบ API Key และการเชื่อมต่ออินเทอร์เน็ต
3. ไฟล์ใหญ่เกินไป - ใช้ไฟล์ที่สั้นกว่า 10 นาที
4. วิดีโอไม่มีเสียง - ตรวจสอบว่าวิดีโอมี audio track หรือไม่
5. ไม่สามารถแยกเสียงจากวิดีโอได้ - ตรวจสอบว่าติดตั้ง ffmpeg แล้วหรือยัง`

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	category := flag.String("category", "", "content category label")
	watchMode := flag.Bool("watch", false, "watch the input directory instead of processing a single file")
	autoYes := flag.Bool("yes", false, "skip the transcript confirmation prompt")
	flag.Parse()

	ctx := context.Background()

	// .env is optional; the environment may carry the key directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Error(ctx, "GEMINI_API_KEY is required")
		os.Exit(1)
	}

	if *category == "" {
		*category = cfg.Pipeline.DefaultCategory
	}
	if !domain.ValidCategory(*category) {
		log.Error(ctx, "Unknown category %q. Valid categories: %s",
			*category, strings.Join(domain.Categories, ", "))
		os.Exit(1)
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	model, err := generator.NewGeminiModel(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		log.Error(ctx, "Failed to create Gemini client: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	norm := media.New(cfg.FFmpeg, exec, log)
	rec := speech.NewGoogleRecognizer(cfg.Speech)
	trans := speech.New(cfg, exec, norm, rec, log)
	gen := generator.New(model, log)
	proc := processor.New(cfg, norm, trans, gen, log)

	if *watchMode {
		runWatch(ctx, cfg, proc, log, *category)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dhammapost [flags] <media file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := runOnce(ctx, cfg, proc, log, flag.Arg(0), *category, *autoYes); err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		fmt.Fprintln(os.Stderr, "\n"+troubleshooting)
		os.Exit(1)
	}
}

// runOnce drives one session through upload, review and result for a single file.
func runOnce(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, mediaPath, category string, autoConfirm bool) error {
	fileName := filepath.Base(mediaPath)

	stagedPath, err := stageFile(mediaPath, cfg.Paths.Temp)
	if err != nil {
		return fmt.Errorf("stage media file: %w", err)
	}

	sess := session.New(category, log)

	if err := proc.Ingest(ctx, sess, stagedPath, fileName); err != nil {
		return err
	}

	transcript := sess.Initial.Transcript
	fmt.Printf("\n===== Transcript (%d chars, %d words) =====\n%s\n\n",
		len([]rune(transcript)), len(strings.Fields(transcript)), transcript)

	for {
		if !autoConfirm && !promptConfirm() {
			proc.Reset(ctx, sess)
			log.Info(ctx, "Session reset; nothing was generated")
			return nil
		}

		if err := proc.Confirm(ctx, sess); err != nil {
			log.Error(ctx, "Content generation failed: %v", err)
			if autoConfirm {
				proc.Reset(ctx, sess)
				return err
			}
			// Transcript and temp files survived; offer another attempt.
			fmt.Println("การสร้างโพสต์ล้มเหลว ลองยืนยันอีกครั้งหรือยกเลิก")
			continue
		}
		break
	}

	written, err := artifact.WriteAll(cfg.Paths.Output, fileName, sess.Final)
	if err != nil {
		return err
	}

	fmt.Printf("\n===== %s =====\n", sess.Final.Headline)
	fmt.Println(sess.Final.Post)
	fmt.Printf("\nKeywords: %s\n", strings.Join(sess.Final.Keywords, ", "))
	fmt.Printf("Processing time: %.2fs\n", sess.Final.ProcessingTime.Seconds())
	fmt.Println("\nArtifacts:")
	for _, path := range written {
		fmt.Println("  " + path)
	}

	return nil
}

// runWatch monitors the input directory and auto-confirms every transcript.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger, category string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handler := func(ctx context.Context, filePath string) error {
		return runOnce(ctx, cfg, proc, log, filePath, category, true)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Pipeline.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Dhamma post pipeline is ready")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	log.Info(ctx, "Pipeline stopped")
}

// stageFile copies the upload into the temp area under a session-unique name
// so concurrent sessions with identical filenames cannot collide.
func stageFile(srcPath, tempDir string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	stagedPath := filepath.Join(tempDir, uuid.NewString()+"_"+filepath.Base(srcPath))
	dst, err := os.Create(stagedPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(stagedPath)
		return "", err
	}

	return stagedPath, nil
}

func promptConfirm() bool {
	fmt.Print("ยืนยันและสร้างโพสต์? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
