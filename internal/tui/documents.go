package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"lectura-cli/internal/api"
	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
	"lectura-cli/internal/upload"
)

// documentsView lists uploaded files and YouTube submissions and hosts
// the two ingestion forms.
type documentsView struct {
	list  listCore[models.Content]
	stale bool
}

func newDocumentsView() *documentsView {
	return &documentsView{}
}

func (v *documentsView) startLoad() tea.Cmd {
	v.list.startLoad()
	return nil
}

func (v *documentsView) update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.list.up()
	case "down", "j":
		v.list.down()
	case "tab":
		return a.cycleMain(false)
	case "shift+tab":
		return a.cycleMain(true)
	case "r":
		v.list.startLoad()
		return a.fetchDocumentsCmd()
	case "u":
		a.form = newUploadForm(a)
	case "y":
		a.form = newYouTubeForm(a)
	case "g":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		if item.Status != "completed" {
			return a.setNotice("Document is still processing", true)
		}
		a.form = newSummaryForm(a, item)
	case "d":
		item, ok := v.list.current()
		if !ok {
			return nil
		}
		id := item.ID
		a.confirm = newConfirm("Delete document",
			fmt.Sprintf("Delete %q and everything derived from it?", item.Title),
			func() tea.Cmd {
				return a.deleteCmd(func(ctx context.Context) ([]flow.Collection, error) {
					return a.client.DeleteContent(ctx, id)
				})
			})
	case "ctrl+l":
		return a.logoutCmd()
	}
	return nil
}

func (v *documentsView) view(a *App) string {
	body := a.header()
	if st := v.list.status("No documents yet. Press u to upload a file or y to add a YouTube link."); st != "" {
		return body + st + "\n" + v.footer()
	}

	for i, item := range v.list.items {
		row := fmt.Sprintf("%s %-7s %s", statusIcon(item.Status), item.Type, item.Title)
		if i == v.list.sel {
			body += selectedRowStyle.Render("> "+row) + "\n"
		} else {
			body += rowStyle.Render("  "+row) + "\n"
		}
	}
	return body + v.footer()
}

func (v *documentsView) footer() string {
	return keyHint("u", "upload", "y", "youtube", "g", "summarize", "d", "delete", "tab", "switch", "ctrl+l", "logout")
}

func statusIcon(status string) string {
	switch status {
	case "completed":
		return noticeStyle.Render("✓")
	case "failed":
		return errorStyle.Render("✗")
	default:
		return dimStyle.Render("…")
	}
}

func newUploadForm(a *App) *formView {
	return newForm("Upload a file",
		func(values []string) (tea.Cmd, string) {
			path := strings.TrimSpace(values[0])
			title := strings.TrimSpace(values[1])
			info, err := upload.InspectFile(path)
			if err != nil {
				return nil, err.Error()
			}
			if title == "" {
				title = info.Title
			}
			return a.uploadCmd(path, title), ""
		},
		textField("Path", "/path/to/lecture.pdf", ""),
		textField("Title", "defaults to the file name", ""),
	)
}

func newYouTubeForm(a *App) *formView {
	return newForm("Add a YouTube lecture",
		func(values []string) (tea.Cmd, string) {
			url := strings.TrimSpace(values[0])
			if _, err := upload.ExtractYouTubeID(url); err != nil {
				return nil, err.Error()
			}
			return a.validateYouTubeCmd(url), ""
		},
		textField("URL", "https://youtube.com/watch?v=...", ""),
	)
}

func newSummaryForm(a *App, content models.Content) *formView {
	contentID := content.ID
	return newForm("Generate summary: "+content.Title,
		func(values []string) (tea.Cmd, string) {
			req := models.GenerateSummaryRequest{
				ContentID: contentID,
				Format:    values[0],
				Length:    values[1],
			}
			return a.generateCmd("Summary generation started", func(ctx context.Context) (*api.GenerateResult, []flow.Collection, error) {
				return a.client.GenerateSummary(ctx, req)
			}), ""
		},
		choiceField("Format", "bullets", "cornell", "paragraph"),
		choiceField("Length", "short", "medium", "detailed"),
	)
}
