package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"file-man/internal/lister"
	ui "file-man/internal/tui"
	"file-man/pkg/utils"
)

type CLI struct {
	Path      string `flag:"" short:"p" help:"Starting directory. When omitted the startup prompt asks for one."`
	Report    bool   `flag:"" short:"r" help:"Print a size report of the directory's files and exit."`
	JSON      bool   `flag:"" help:"Report output as JSON (implies --report)."`
	BackupDir string `flag:"" help:"Archive files into a zip under this directory before deleting."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("file-man"),
		kong.Description("Interactive terminal file manager: navigate, select, rename, delete."),
		kong.UsageOnError(),
	)

	// Ctrl+C during the startup prompt or report mode. Inside the session
	// the terminal is in raw mode and bubbletea delivers it as a key event.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (cli *CLI) Run() error {
	report := cli.Report || cli.JSON

	start := cli.Path
	if start == "" {
		if report {
			start = "."
		} else {
			var err error
			start, err = promptStartDir()
			if err != nil {
				return err
			}
		}
	}

	dir, err := resolveDir(start)
	if err != nil {
		return err
	}

	if report {
		return runReport(dir, cli.JSON)
	}
	return ui.Run(dir, cli.BackupDir)
}

func promptStartDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	fmt.Printf("Enter starting directory [%s]: ", cwd)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return cwd, nil
	}
	return line, nil
}

// resolveDir turns the supplied path into an absolute, symlink-resolved
// directory or fails before any menu is entered.
func resolveDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("directory %q does not exist: %w", abs, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", resolved)
	}
	return resolved, nil
}

// runReport is the non-interactive mode: the size report of every regular
// file in the directory, as a table or as JSON.
func runReport(dir string, asJSON bool) error {
	files, err := lister.Files(dir)
	if err != nil {
		return err
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		payload := struct {
			Dir       string         `json:"dir"`
			TotalSize int64          `json:"totalSize"`
			Files     []lister.Entry `json:"files"`
		}{Dir: dir, TotalSize: total, Files: files}
		return enc.Encode(payload)
	}

	fmt.Printf("file-man report\ndir: %s\nfiles: %d\n", dir, len(files))
	fmt.Println("----------------------------------------------")
	for _, f := range files {
		fmt.Printf("%-8s %s\n", utils.FormatSizeCompact(f.Size), f.Name)
	}
	fmt.Println("----------------------------------------------")
	fmt.Printf("Total size: %s\n", utils.FormatSize(total))
	return nil
}
