package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nowledge-app/chatwise-import/internal/archive"
	"github.com/nowledge-app/chatwise-import/internal/chatwise"
	"github.com/nowledge-app/chatwise-import/internal/config"
	"github.com/nowledge-app/chatwise-import/internal/importer"
	"github.com/nowledge-app/chatwise-import/internal/mem"
	"github.com/nowledge-app/chatwise-import/internal/render"
	"github.com/nowledge-app/chatwise-import/internal/tui"
)

type importMode int

const (
	modeInteractive importMode = iota
	modeBatch
	modeQuit
)

func rootCmd() *cobra.Command {
	var batch, interactive, verbose bool

	cmd := &cobra.Command{
		Use:     "cwimport <zip-or-directory>",
		Short:   "Import ChatWise chat exports into Nowledge Mem",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			return runImport(cmd.Context(), args[0], batch, interactive)
		},
	}

	cmd.Flags().BoolVar(&batch, "batch", false, "Import everything without confirmation")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Confirm each conversation before importing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("batch", "interactive")

	return cmd
}

func runImport(ctx context.Context, path string, batchFlag, interactiveFlag bool) error {
	fmt.Println(render.Banner())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir, err := resolveInput(path)
	if err != nil {
		return err
	}

	if !chatwise.DetectExport(dir) {
		return fmt.Errorf("not a valid ChatWise export: %s", path)
	}
	fmt.Println(render.Ok("✓ Detected ChatWise export format"))

	files, err := chatwise.ChatFiles(dir)
	if err != nil {
		return fmt.Errorf("scan chat files: %w", err)
	}
	fmt.Printf("Found %d chat files\n", len(files))

	var chats []*chatwise.Thread
	for _, file := range files {
		chat, err := chatwise.ParseFile(file)
		if err != nil {
			slog.Warn("skipping unparsable chat file", "file", filepath.Base(file), "error", err)
			continue
		}
		if chat == nil {
			slog.Debug("no importable messages", "file", filepath.Base(file))
			continue
		}
		chats = append(chats, chat)
	}

	if len(chats) == 0 {
		fmt.Println(render.Warn("No importable conversations found"))
		return nil
	}
	fmt.Printf("Parsed %d conversations\n\n", len(chats))
	fmt.Println(render.ChatTable(chats))
	fmt.Println()

	client := mem.NewClient(cfg.APIBase, cfg.Timeout())

	fmt.Println("Fetching existing records...")
	remote, err := client.ListThreads(ctx)
	if err != nil {
		slog.Warn("listing existing threads failed, duplicate check degraded", "error", err)
	}
	known := importer.NewKnownIDs(remote)
	fmt.Println(render.Ok(fmt.Sprintf("✓ Fetched %d existing records", len(remote))))
	fmt.Println()

	switch chooseMode(batchFlag, interactiveFlag, os.Stdin) {
	case modeQuit:
		fmt.Println(render.Warn("Aborted"))
		return nil

	case modeInteractive:
		fmt.Println(render.Header("Interactive mode: confirm each record"))
		totals, quit, err := tui.Run(ctx, client, chats, known)
		if err != nil {
			return fmt.Errorf("interactive import: %w", err)
		}
		if quit {
			fmt.Println(render.Warn("Stopped early; remaining conversations untouched"))
		}
		fmt.Printf("\nDone: imported %d, skipped %d, duplicates %d\n",
			totals.Imported, totals.Skipped, totals.Duplicates)

	default:
		fmt.Println(render.Header("Batch mode: importing all records"))
		res := importer.RunBatch(ctx, client, chats, known, os.Stdout)
		fmt.Println()
		render.BatchReport(os.Stdout, res)
	}

	return nil
}

// resolveInput turns the CLI argument into a directory of chat files,
// extracting zip archives to a temp dir first.
func resolveInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		fmt.Printf("Extracting: %s\n", filepath.Base(path))
		dir, err := archive.Extract(path)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", filepath.Base(path), err)
		}
		return dir, nil
	}

	if !info.IsDir() {
		return "", fmt.Errorf("need a .zip file or a directory: %s", path)
	}
	return path, nil
}

// chooseMode resolves the import mode from flags, falling back to a prompt
// on a terminal and to batch mode everywhere else.
func chooseMode(batchFlag, interactiveFlag bool, in *os.File) importMode {
	if batchFlag {
		return modeBatch
	}
	if interactiveFlag {
		return modeInteractive
	}
	if !term.IsTerminal(int(in.Fd())) {
		slog.Debug("stdin is not a terminal, using batch mode")
		return modeBatch
	}
	return promptMode(in)
}

func promptMode(in io.Reader) importMode {
	fmt.Println("Import mode:")
	fmt.Println("  1 - interactive (confirm each: y=import / n=skip / q=quit)")
	fmt.Println("  2 - batch (import everything)")
	fmt.Println("  q - abort")
	fmt.Println()

	reader := bufio.NewReader(in)
	for {
		fmt.Print("Select [1/2/q] (1): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF on a closed stdin means nobody can answer
			return modeQuit
		}
		switch strings.TrimSpace(line) {
		case "", "1":
			return modeInteractive
		case "2":
			return modeBatch
		case "q", "Q":
			return modeQuit
		}
	}
}

func setupLogging(verbose bool) {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
