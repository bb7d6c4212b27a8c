package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/whydidisavethis/linksaver/internal/api"
	"github.com/whydidisavethis/linksaver/internal/model"
	"github.com/whydidisavethis/linksaver/internal/platform"
	"github.com/whydidisavethis/linksaver/internal/submit"
)

// AddScreen collects a link for autofill plus the manual item form
type AddScreen struct {
	ui *RootUI

	linkEntry   *widget.Entry
	autofillBtn *widget.Button
	spinner     *widget.ProgressBarInfinite
	statusLabel *widget.Label

	sourceEntry     *widget.Entry
	notesEntry      *widget.Entry
	creatorEntry    *widget.Entry
	imageEntry      *widget.Entry
	tagsEntry       *widget.Entry
	categoriesEntry *widget.Entry
	suggestionsBox  *fyne.Container
	saveBtn         *widget.Button

	root fyne.CanvasObject
}

// NewAddScreen builds the add-item view and wires the submission tracker
func NewAddScreen(ui *RootUI) *AddScreen {
	s := &AddScreen{ui: ui}

	s.linkEntry = widget.NewEntry()
	s.linkEntry.SetPlaceHolder("Paste an Instagram or TikTok link")
	s.linkEntry.OnSubmitted = func(string) { s.onAutofill() }
	s.autofillBtn = widget.NewButton("Autofill from Link", s.onAutofill)
	s.autofillBtn.Importance = widget.HighImportance

	s.spinner = widget.NewProgressBarInfinite()
	s.spinner.Hide()
	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Hide()

	s.sourceEntry = widget.NewEntry()
	s.sourceEntry.SetPlaceHolder("https://example.com/your-saved-post")
	s.notesEntry = widget.NewMultiLineEntry()
	s.notesEntry.SetPlaceHolder("Why did you save this?")
	s.notesEntry.Wrapping = fyne.TextWrapWord
	s.creatorEntry = widget.NewEntry()
	s.creatorEntry.SetPlaceHolder("@username or creator name")
	s.imageEntry = widget.NewEntry()
	s.imageEntry.SetPlaceHolder("Image URL")
	s.tagsEntry = widget.NewEntry()
	s.tagsEntry.SetPlaceHolder("Tags, comma separated")
	s.categoriesEntry = widget.NewEntry()
	s.categoriesEntry.SetPlaceHolder("Categories, comma separated")
	s.suggestionsBox = container.NewVBox()

	s.saveBtn = widget.NewButton("Save Post", s.onSave)
	s.saveBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("Autofill from Social Media", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.linkEntry,
		s.autofillBtn,
		s.spinner,
		s.statusLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Or Enter Details Manually", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Source URL"),
		s.sourceEntry,
		widget.NewLabel("Notes"),
		s.notesEntry,
		widget.NewLabel("Categories"),
		s.categoriesEntry,
		widget.NewLabel("Tags"),
		s.tagsEntry,
		s.suggestionsBox,
		widget.NewLabel("Creator"),
		s.creatorEntry,
		widget.NewLabel("Image URL"),
		s.imageEntry,
		s.saveBtn,
	)

	s.root = container.NewVScroll(form)

	ui.tracker.SetUpdateCallback(s.onTaskUpdate)

	// The tracker outlives the screen; pick up an attempt that is still
	// running from before a rebuild
	if task := ui.tracker.Current(); task != nil && task.Status.IsActive() {
		s.renderTask(task)
	}
	return s
}

// Container returns the screen's root object
func (s *AddScreen) Container() fyne.CanvasObject {
	return s.root
}

// Teardown abandons any in-flight submission when the screen goes away.
// The tracker itself stays alive for the next screen instance.
func (s *AddScreen) Teardown() {
	s.ui.tracker.CancelActive()
}

// HandleShareLink feeds a share-sheet deep link into the autofill flow
func (s *AddScreen) HandleShareLink(raw string) {
	encoded, decoded, err := platform.ParseShareLink(raw)
	if err != nil {
		log.Printf("ui: invalid share link: %v", err)
		dialog.ShowError(errors.New("received an invalid shared link"), s.ui.window)
		return
	}

	// Show the link so the user sees what arrived
	s.linkEntry.SetText(decoded)

	if !s.ui.settings.GetAutofillShared() {
		return
	}
	if err := s.ui.tracker.SubmitShared(encoded); err != nil {
		s.reportSubmitError(err)
	}
}

func (s *AddScreen) onAutofill() {
	if err := s.ui.tracker.Submit(s.linkEntry.Text); err != nil {
		s.reportSubmitError(err)
	}
}

func (s *AddScreen) reportSubmitError(err error) {
	switch {
	case errors.Is(err, submit.ErrBusy):
		s.ui.showPopUp("Another link is currently being processed. Please wait.")
	case errors.Is(err, submit.ErrEmptyURL):
		s.ui.showPopUp("A valid link is needed to autofill.")
	default:
		dialog.ShowError(err, s.ui.window)
	}
}

// onTaskUpdate handles submission tracker updates. Runs on the tracker's
// goroutine, so UI mutations go through fyne.Do.
func (s *AddScreen) onTaskUpdate(task *model.SubmissionTask) {
	fyne.Do(func() { s.renderTask(task) })
}

// renderTask reflects one tracker snapshot into the autofill widgets
func (s *AddScreen) renderTask(task *model.SubmissionTask) {
	switch task.Status {
	case model.TaskStatusSubmitting:
		s.setStatus("Submitting "+task.GetDisplayTitle()+"...", true)
	case model.TaskStatusAwaiting:
		s.setStatus("Processing "+task.GetDisplayTitle()+". Waiting for updates...", true)
	case model.TaskStatusSucceeded:
		s.applyAutofill(task)
		s.setStatus("", false)
		s.linkEntry.SetText("")
	case model.TaskStatusFailed:
		s.setStatus("", false)
		dialog.ShowError(errors.New(task.LastError), s.ui.window)
	}
}

func (s *AddScreen) setStatus(message string, busy bool) {
	if busy {
		s.spinner.Show()
	} else {
		s.spinner.Hide()
	}
	if message != "" {
		s.statusLabel.SetText(message)
		s.statusLabel.Show()
	} else {
		s.statusLabel.Hide()
	}
}

// applyAutofill populates the form from a successful enrichment result
func (s *AddScreen) applyAutofill(task *model.SubmissionTask) {
	result := task.Result
	if result == nil {
		return
	}

	s.sourceEntry.SetText(task.URL)
	s.notesEntry.SetText(result.Notes)
	s.creatorEntry.SetText(result.Creator)
	s.imageEntry.SetText(result.ImageURL)
	s.showSuggestions(result.SuggestedTags, result.SuggestedCategories)
}

// showSuggestions renders suggested tags/categories as tappable chips that
// append themselves to the form entries
func (s *AddScreen) showSuggestions(tags, categories []string) {
	s.suggestionsBox.Objects = nil

	if len(tags) > 0 {
		row := container.NewHBox(widget.NewLabel("Suggested tags:"))
		for _, tag := range tags {
			t := tag
			row.Add(widget.NewButton(t, func() { appendToList(s.tagsEntry, t) }))
		}
		s.suggestionsBox.Add(row)
	}
	if len(categories) > 0 {
		row := container.NewHBox(widget.NewLabel("Suggested categories:"))
		for _, cat := range categories {
			c := cat
			row.Add(widget.NewButton(c, func() { appendToList(s.categoriesEntry, c) }))
		}
		s.suggestionsBox.Add(row)
	}
	s.suggestionsBox.Refresh()
}

func (s *AddScreen) onSave() {
	user := s.ui.session.User()
	if user == nil {
		s.ui.showPopUp("You need to be logged in to add an item.")
		return
	}

	payload := api.ItemPayload{
		UserID:     user.ID,
		SourceURL:  strings.TrimSpace(s.sourceEntry.Text),
		Notes:      strings.TrimSpace(s.notesEntry.Text),
		Categories: splitList(s.categoriesEntry.Text),
		Tags:       splitList(s.tagsEntry.Text),
		Creator:    strings.TrimSpace(s.creatorEntry.Text),
		ImageURL:   strings.TrimSpace(s.imageEntry.Text),
	}

	s.saveBtn.Disable()
	go func() {
		item, err := s.ui.client.AddItem(context.Background(), payload)
		fyne.Do(func() {
			s.saveBtn.Enable()
			if err != nil {
				dialog.ShowError(err, s.ui.window)
				return
			}
			log.Printf("ui: item %d created", item.ID)
			s.clearForm()
			s.ui.showPopUp("Item added successfully.")
			if s.ui.itemsScreen != nil {
				s.ui.itemsScreen.Reload()
			}
		})
	}()
}

func (s *AddScreen) clearForm() {
	s.sourceEntry.SetText("")
	s.notesEntry.SetText("")
	s.creatorEntry.SetText("")
	s.imageEntry.SetText("")
	s.tagsEntry.SetText("")
	s.categoriesEntry.SetText("")
	s.suggestionsBox.Objects = nil
	s.suggestionsBox.Refresh()
}

// splitList turns comma-separated input into a clean slice
func splitList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// appendToList adds value to a comma-separated entry if not present yet
func appendToList(entry *widget.Entry, value string) {
	current := splitList(entry.Text)
	for _, v := range current {
		if v == value {
			return
		}
	}
	current = append(current, value)
	entry.SetText(strings.Join(current, ", "))
}
