package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"file-man/internal/fileops"
	"file-man/internal/lister"
	"file-man/internal/selection"
	"file-man/pkg/utils"
)

type status int

const (
	statusBrowse status = iota
	statusPick
	statusMenu
	statusRename
	statusConfirm
	statusDone
)

type model struct {
	st status

	// browse state
	currentPath string
	dirs        []lister.Entry

	// pick / operations state
	chosenDir string
	files     []lister.Entry
	sel       *selection.Set

	// rename iteration
	renameIdx int

	// optional zip backup before delete
	backupDir string

	input    textinput.Model
	feedback []string
	farewell string
}

func newModel(start, backupDir string) model {
	ti := textinput.New()
	ti.Focus()
	m := model{
		st:          statusBrowse,
		currentPath: start,
		backupDir:   backupDir,
		sel:         &selection.Set{},
		input:       ti,
	}
	m.refreshDirs()
	return m
}

// Run drives one full interactive session: navigate to a directory, select
// files in it, then apply operations until the user exits. The program runs
// without the alternate screen so the final view stays in the scrollback.
func Run(start, backupDir string) error {
	p := tea.NewProgram(newModel(start, backupDir))
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Interrupt: unwind from any prompt to the farewell. An
			// interrupt between batch steps leaves the batch partially
			// applied; the feedback printed so far is the record.
			m.farewell = "Goodbye!"
			m.st = statusDone
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			return m.submit(line)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one full input line. Responses are trimmed; keyword
// comparison is case-insensitive everywhere except new-name input, where
// case is meaningful.
func (m model) submit(raw string) (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(raw)
	switch m.st {
	case statusBrowse:
		return m.browseInput(strings.ToLower(line))
	case statusPick:
		return m.pickInput(strings.ToLower(line))
	case statusMenu:
		return m.menuInput(strings.ToLower(line))
	case statusRename:
		return m.renameInput(line)
	case statusConfirm:
		return m.confirmInput(strings.ToLower(line))
	}
	return m, nil
}

func (m *model) report(line string) {
	m.feedback = append(m.feedback, line)
}

func (m model) finish(farewell string) (tea.Model, tea.Cmd) {
	m.farewell = farewell
	m.st = statusDone
	return m, tea.Quit
}

func (m *model) refreshDirs() {
	dirs, err := lister.Dirs(m.currentPath)
	if err != nil {
		m.report(errorStyle.Render(fmt.Sprintf("Error accessing %s: %v", m.currentPath, err)))
		dirs = nil
	}
	m.dirs = dirs
}

// browse: descend, ascend, accept the current directory, or quit.
func (m model) browseInput(choice string) (tea.Model, tea.Cmd) {
	m.feedback = nil
	switch choice {
	case "", "y", "yes":
		return m.enterPick(m.currentPath)
	case "q", "quit":
		return m.finish("No directory selected. Goodbye!")
	case "..":
		parent := filepath.Dir(m.currentPath)
		if parent == m.currentPath {
			m.report(warnStyle.Render("Already at root directory"))
			return m, nil
		}
		m.currentPath = parent
		m.refreshDirs()
		return m, nil
	}
	if n, err := strconv.Atoi(choice); err == nil {
		if len(m.dirs) == 0 {
			m.report(errorStyle.Render("No subdirectories to enter"))
			return m, nil
		}
		if n < 1 || n > len(m.dirs) {
			m.report(errorStyle.Render(fmt.Sprintf("Invalid choice. Please enter 1-%d", len(m.dirs))))
			return m, nil
		}
		m.currentPath = m.dirs[n-1].Path
		m.refreshDirs()
		return m, nil
	}
	m.report(errorStyle.Render("Invalid input. Please try again."))
	return m, nil
}

// enterPick lists the accepted directory's files once and moves to the file
// selector, or ends the session when there is nothing to select.
func (m model) enterPick(dir string) (tea.Model, tea.Cmd) {
	files, err := lister.Files(dir)
	if err != nil {
		m.report(errorStyle.Render(fmt.Sprintf("Error accessing %s: %v", dir, err)))
		files = nil
	}
	if len(files) == 0 {
		return m.finish(fmt.Sprintf("No files found in %s. Goodbye!", dir))
	}
	m.chosenDir = dir
	m.files = files
	m.sel = &selection.Set{}
	m.st = statusPick
	return m, nil
}

// pick: toggle files in and out of the selection.
func (m model) pickInput(choice string) (tea.Model, tea.Cmd) {
	m.feedback = nil
	switch choice {
	case "", "d", "done":
		if m.sel.Len() == 0 {
			return m.finish("No files selected. Goodbye!")
		}
		m.st = statusMenu
		return m, nil
	case "q", "quit":
		// quit abandons the selection; done keeps it
		m.sel.Clear()
		return m.finish("No files selected. Goodbye!")
	case "c", "clear":
		m.sel.Clear()
		m.report("Selection cleared")
		return m, nil
	}
	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(m.files) {
			m.report(errorStyle.Render(fmt.Sprintf("Invalid choice. Please enter 1-%d", len(m.files))))
			return m, nil
		}
		f := m.files[n-1]
		if m.sel.Toggle(f) {
			m.report(addedStyle.Render("+ Added: " + f.Name))
		} else {
			m.report(removedStyle.Render("- Removed: " + f.Name))
		}
		return m, nil
	}
	m.report(errorStyle.Render("Invalid input. Please try again."))
	return m, nil
}

func (m model) menuInput(choice string) (tea.Model, tea.Cmd) {
	m.feedback = nil
	switch choice {
	case "1":
		m.renameIdx = 0
		m.st = statusRename
		return m, nil
	case "2":
		m.st = statusConfirm
		return m, nil
	case "3":
		m.reportInfo()
		return m, nil
	case "4", "q", "quit", "":
		return m.finish("Goodbye!")
	}
	m.report(errorStyle.Render("Invalid choice"))
	return m, nil
}

func (m *model) reportInfo() {
	m.report(headerStyle.Render("File information:"))
	for _, f := range m.sel.Entries() {
		m.report(fmt.Sprintf("  %s: %s", f.Name, sizeStyle.Render(utils.FormatSize(f.Size))))
	}
	m.report("Total size: " + sizeStyle.Render(utils.FormatSize(m.sel.TotalSize())))
}

// rename: one prompt per selected file, in selection order. Failures skip
// the file and continue; a partially renamed batch is accepted behavior.
func (m model) renameInput(name string) (tea.Model, tea.Cmd) {
	m.feedback = nil
	entries := m.sel.Entries()
	f := entries[m.renameIdx]
	switch {
	case name == "":
		m.report("Skipped: " + f.Name)
	default:
		dest, err := fileops.Rename(f, name)
		switch {
		case err == nil:
			m.report(okStyle.Render("Renamed to: " + name))
			entries[m.renameIdx] = lister.Entry{Name: name, Path: dest, Size: f.Size}
		case errors.Is(err, fileops.ErrInvalidName):
			m.report(errorStyle.Render("Invalid filename characters. Skipped."))
		case errors.Is(err, fileops.ErrDestinationExists):
			m.report(errorStyle.Render(fmt.Sprintf("File %q already exists. Skipped.", name)))
		default:
			m.report(errorStyle.Render(fmt.Sprintf("Error renaming %s: %v", f.Name, err)))
		}
	}
	m.renameIdx++
	if m.renameIdx >= m.sel.Len() {
		m.st = statusMenu
	}
	return m, nil
}

// confirm: one y/N answer covers the whole selection. Deletion stops at the
// first failure and the session ends after the attempt either way.
func (m model) confirmInput(choice string) (tea.Model, tea.Cmd) {
	m.feedback = nil
	if choice != "y" && choice != "yes" {
		m.report(errorStyle.Render("Deletion cancelled"))
		m.st = statusMenu
		return m, nil
	}

	files := m.sel.Entries()
	total := len(files)

	if m.backupDir != "" {
		dest, _, err := fileops.Archive(m.backupDir, files)
		if err != nil {
			m.report(errorStyle.Render(fmt.Sprintf("Backup failed, nothing deleted: %v", err)))
			m.st = statusMenu
			return m, nil
		}
		m.report("Archived to: " + dest)
	}

	deleted, err := fileops.Delete(files, func(f lister.Entry) {
		m.report(okStyle.Render("Deleted: " + f.Name))
	})
	if err != nil {
		m.report(errorStyle.Render(fmt.Sprintf("Error deleting %s: %v", files[deleted].Name, err)))
	}
	m.report(fmt.Sprintf("Successfully deleted %d/%d files", deleted, total))
	return m.finish("Goodbye!")
}

const divider = "============================================================"

func (m model) View() string {
	var b strings.Builder
	for _, line := range m.feedback {
		b.WriteString(line + "\n")
	}
	switch m.st {
	case statusBrowse:
		b.WriteString(divider + "\n")
		b.WriteString(headerStyle.Render("Current directory: "+m.currentPath) + "\n")
		if len(m.dirs) == 0 {
			b.WriteString("  No subdirectories found\n")
		} else {
			for i, d := range m.dirs {
				b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, dirStyle.Render(d.Name)))
			}
		}
		b.WriteString(divider + "\n")
		if len(m.dirs) > 0 {
			b.WriteString(fmt.Sprintf("Choose: [y]es use current | [1-%d] to enter | [..] go up | [q]uit\n", len(m.dirs)))
		} else {
			b.WriteString("Choose: [y]es use current | [..] go up | [q]uit\n")
		}
		b.WriteString(m.input.View())
	case statusPick:
		b.WriteString(divider + "\n")
		b.WriteString(headerStyle.Render("Files in: "+m.chosenDir) + "\n")
		for i, f := range m.files {
			mark := " "
			name := f.Name
			if m.sel.Contains(f.Path) {
				mark = markSelectedStyle.Render("✓")
				name = selectedStyle.Render(name)
			}
			b.WriteString(fmt.Sprintf("  %s %2d. %s (%s)\n", mark, i+1, name, sizeStyle.Render(utils.FormatSize(f.Size))))
		}
		if m.sel.Len() > 0 {
			b.WriteString(fmt.Sprintf("Selected: %d files\n", m.sel.Len()))
		}
		b.WriteString(divider + "\n")
		b.WriteString(fmt.Sprintf("Select files [1-%d], [c]lear, [d]one, [q]uit\n", len(m.files)))
		b.WriteString(m.input.View())
	case statusMenu:
		b.WriteString(divider + "\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("Operations on %d selected files:", m.sel.Len())) + "\n")
		b.WriteString("  1. Rename files\n")
		b.WriteString("  2. Delete files\n")
		b.WriteString("  3. Show file info\n")
		b.WriteString("  4. Quit\n")
		b.WriteString(divider + "\n")
		b.WriteString("Choose operation [1-4]\n")
		b.WriteString(m.input.View())
	case statusRename:
		f := m.sel.Entries()[m.renameIdx]
		b.WriteString(fmt.Sprintf("Renaming %d files (%d/%d)\n", m.sel.Len(), m.renameIdx+1, m.sel.Len()))
		b.WriteString("Current: " + headerStyle.Render(f.Name) + "\n")
		b.WriteString("New name (Enter to skip)\n")
		b.WriteString(m.input.View())
	case statusConfirm:
		files := m.sel.Entries()
		b.WriteString(headerStyle.Render(fmt.Sprintf("Deleting %d files:", len(files))) + "\n")
		for _, f := range files {
			b.WriteString(fmt.Sprintf("  - %s (%s)\n", f.Name, sizeStyle.Render(utils.FormatSize(f.Size))))
		}
		if m.backupDir != "" {
			b.WriteString("Files will be archived under " + m.backupDir + " first\n")
		}
		b.WriteString(warnStyle.Render(fmt.Sprintf("Delete ALL %d files? [y/N]", len(files))) + "\n")
		b.WriteString(m.input.View())
	case statusDone:
		b.WriteString(m.farewell + "\n")
	}
	return b.String()
}

var (
	headerStyle       = lipgloss.NewStyle().Bold(true)
	dirStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))             // blue
	sizeStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))             // cyan
	markSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)  // green
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // green
	addedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // green
	removedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // gray
	okStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // green
	warnStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true) // yellow
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))            // red
)
