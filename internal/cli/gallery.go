package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/earthinspires/internal/core"
	"github.com/inovacc/earthinspires/internal/model"
)

type snapshotItem struct {
	snap model.Snapshot
}

func (i snapshotItem) Title() string {
	if i.snap.Note != "" {
		return fmt.Sprintf("%s  %s", i.snap.Timestamp, i.snap.Note)
	}

	return i.snap.Timestamp
}

func (i snapshotItem) Description() string {
	return fmt.Sprintf("%s | zoom %g | %.2f, %.2f", i.snap.ThumbnailDataURL, i.snap.Zoom, i.snap.Lat, i.snap.Lng)
}

func (i snapshotItem) FilterValue() string {
	return i.snap.Timestamp + " " + i.snap.Note
}

// galleryClosedMsg tells the parent model to drop the overlay.
type galleryClosedMsg struct{}

func closeGallery() tea.Msg { return galleryClosedMsg{} }

// GalleryModel is the snapshot overlay.
type GalleryModel struct {
	app     *core.App
	palette *palette
	list    list.Model
}

func NewGalleryModel(app *core.App, p *palette) GalleryModel {
	l := list.New(nil, p.delegate, 80, 20)
	l.Title = "Gallery"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("snapshot", "snapshots")
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete, keys.Close}
	}

	g := GalleryModel{app: app, palette: p, list: l}
	g.Refresh()

	return g
}

// Refresh reloads the items from the app and reapplies the palette.
func (g *GalleryModel) Refresh() {
	snaps := g.app.Snapshots()

	items := make([]list.Item, len(snaps))
	for i, s := range snaps {
		items[i] = snapshotItem{snap: s}
	}

	idx := g.list.Index()

	g.list.SetDelegate(g.palette.delegate)
	g.list.SetItems(items)

	// Deleting the last row would leave the cursor past the end
	if len(items) > 0 {
		g.list.Select(min(idx, len(items)-1))
	}
}

func (g *GalleryModel) SetSize(width, height int) {
	h, v := g.palette.modal.GetFrameSize()
	g.list.SetSize(width-h, height-v)
}

// SelectedID returns the id of the highlighted snapshot.
func (g GalleryModel) SelectedID() (int64, bool) {
	i, ok := g.list.SelectedItem().(snapshotItem)
	if !ok {
		return 0, false
	}

	return i.snap.ID, true
}

func (g GalleryModel) Init() tea.Cmd {
	return nil
}

func (g GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && g.list.FilterState() != list.Filtering {
		switch {
		case msg.String() == "esc" && g.list.FilterState() == list.FilterApplied:
			// Let the list clear its filter first

		case key.Matches(msg, keys.Close):
			return g, closeGallery

		case key.Matches(msg, keys.Delete):
			if id, ok := g.SelectedID(); ok {
				_ = g.app.Delete(id)
				g.Refresh()
			}

			return g, nil
		}
	}

	var cmd tea.Cmd

	g.list, cmd = g.list.Update(msg)

	return g, cmd
}

func (g GalleryModel) View() string {
	if len(g.list.Items()) == 0 {
		body := strings.Join([]string{
			g.palette.title.Render("Gallery"),
			"",
			g.palette.empty.Render("No snapshots yet. Press c to capture the Earth."),
			"",
			g.palette.subtitle.Render("esc close"),
		}, "\n")

		return g.palette.modal.Render(body)
	}

	return g.palette.modal.Render(g.list.View())
}
