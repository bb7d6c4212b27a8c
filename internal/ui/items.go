package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/whydidisavethis/linksaver/internal/api"
	"github.com/whydidisavethis/linksaver/internal/model"
)

// ItemsScreen lists the user's saved items with search and paging
type ItemsScreen struct {
	ui *RootUI

	searchEntry *widget.Entry
	list        *widget.List
	loadMoreBtn *widget.Button
	emptyLabel  *widget.Label

	items   []model.Item
	feed    *api.ItemFeed
	loadGen int // bumped per reload; loads started earlier are discarded

	root fyne.CanvasObject
}

// NewItemsScreen builds the saved-items view and loads the first page
func NewItemsScreen(ui *RootUI) *ItemsScreen {
	s := &ItemsScreen{ui: ui}

	s.searchEntry = widget.NewEntry()
	s.searchEntry.SetPlaceHolder("Search your saved items")
	s.searchEntry.OnSubmitted = func(query string) { s.onSearch(query) }
	searchBtn := widget.NewButton("Search", func() { s.onSearch(s.searchEntry.Text) })

	s.list = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("item")
			title.TextStyle = fyne.TextStyle{Bold: true}
			subtitle := widget.NewLabel("")
			return container.NewVBox(title, subtitle)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) { s.updateRow(id, obj) },
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.Unselect(id)
		if id >= 0 && id < len(s.items) {
			s.showDetail(s.items[id])
		}
	}

	s.loadMoreBtn = widget.NewButton("Load more", s.loadNextPage)
	s.loadMoreBtn.Hide()
	s.emptyLabel = widget.NewLabel("You haven't added any items yet!")
	s.emptyLabel.Alignment = fyne.TextAlignCenter
	s.emptyLabel.Hide()

	top := container.NewBorder(nil, nil, nil, searchBtn, s.searchEntry)
	bottom := container.NewVBox(s.emptyLabel, s.loadMoreBtn)
	s.root = container.NewBorder(top, bottom, nil, nil, s.list)

	s.Reload()
	return s
}

// Container returns the screen's root object
func (s *ItemsScreen) Container() fyne.CanvasObject {
	return s.root
}

// Reload restarts the feed from the first page with the current query
func (s *ItemsScreen) Reload() {
	user := s.ui.session.User()
	if user == nil {
		return
	}

	query := strings.TrimSpace(s.searchEntry.Text)

	// A fresh feed per reload so a load still in flight keeps paging its
	// own feed; its result is dropped by the generation check in applyPage
	s.loadGen++
	s.feed = api.NewItemFeed(s.ui.client, user.ID, query, s.ui.settings.GetPageSize())
	s.items = nil
	s.list.Refresh()
	s.loadNextPage()
}

func (s *ItemsScreen) onSearch(query string) {
	log.Printf("ui: searching items for %q", query)
	s.Reload()
}

// loadNextPage fetches one page and appends it to the list
func (s *ItemsScreen) loadNextPage() {
	feed := s.feed
	if feed == nil || !feed.HasMore() {
		return
	}

	gen := s.loadGen
	s.loadMoreBtn.Disable()
	go func() {
		page, err := feed.Next(context.Background())
		fyne.Do(func() {
			s.loadMoreBtn.Enable()
			if err != nil {
				if gen == s.loadGen {
					dialog.ShowError(err, s.ui.window)
				}
				return
			}
			s.applyPage(gen, page)
		})
	}()
}

// applyPage appends a fetched page unless a newer reload superseded the load
func (s *ItemsScreen) applyPage(gen int, page []model.Item) {
	if gen != s.loadGen {
		log.Printf("ui: discarding a page from a superseded load")
		return
	}
	s.items = append(s.items, page...)
	s.refreshControls()
	s.list.Refresh()
}

func (s *ItemsScreen) refreshControls() {
	if s.feed != nil && s.feed.HasMore() {
		s.loadMoreBtn.Show()
	} else {
		s.loadMoreBtn.Hide()
	}
	if len(s.items) == 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
}

func (s *ItemsScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(s.items) {
		return
	}
	item := s.items[id]

	box := obj.(*fyne.Container)
	title := box.Objects[0].(*widget.Label)
	subtitle := box.Objects[1].(*widget.Label)

	title.SetText(item.GetDisplayTitle())
	parts := []string{}
	if len(item.Tags) > 0 {
		parts = append(parts, strings.Join(item.Tags, ", "))
	}
	if item.Creator != "" {
		parts = append(parts, item.Creator)
	}
	subtitle.SetText(strings.Join(parts, " · "))
}

// showDetail opens the edit/delete dialog for one item
func (s *ItemsScreen) showDetail(item model.Item) {
	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetText(item.Notes)
	notesEntry.Wrapping = fyne.TextWrapWord
	creatorEntry := widget.NewEntry()
	creatorEntry.SetText(item.Creator)
	tagsEntry := widget.NewEntry()
	tagsEntry.SetText(strings.Join(item.Tags, ", "))
	categoriesEntry := widget.NewEntry()
	categoriesEntry.SetText(strings.Join(item.Categories, ", "))

	sourceLabel := widget.NewLabel(item.SourceURL)
	sourceLabel.Wrapping = fyne.TextWrapBreak

	deleteBtn := widget.NewButton("Delete", func() { s.confirmDelete(item) })
	deleteBtn.Importance = widget.DangerImportance

	form := container.NewVBox(
		widget.NewLabel("Source URL"), sourceLabel,
		widget.NewLabel("Notes"), notesEntry,
		widget.NewLabel("Categories"), categoriesEntry,
		widget.NewLabel("Tags"), tagsEntry,
		widget.NewLabel("Creator"), creatorEntry,
		widget.NewSeparator(),
		deleteBtn,
	)

	dialog.ShowCustomConfirm(fmt.Sprintf("Item %d", item.ID), "Save", "Cancel",
		container.NewVScroll(form), func(save bool) {
			if !save {
				return
			}
			notes := strings.TrimSpace(notesEntry.Text)
			creator := strings.TrimSpace(creatorEntry.Text)
			update := api.ItemUpdate{
				Notes:      &notes,
				Creator:    &creator,
				Tags:       splitList(tagsEntry.Text),
				Categories: splitList(categoriesEntry.Text),
			}
			s.applyUpdate(item.ID, update)
		}, s.ui.window)
}

func (s *ItemsScreen) applyUpdate(itemID int64, update api.ItemUpdate) {
	go func() {
		updated, err := s.ui.client.UpdateItem(context.Background(), itemID, update)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, s.ui.window)
				return
			}
			for i := range s.items {
				if s.items[i].ID == updated.ID {
					s.items[i] = *updated
					break
				}
			}
			s.list.Refresh()
			s.ui.showPopUp("Item updated.")
		})
	}()
}

func (s *ItemsScreen) confirmDelete(item model.Item) {
	dialog.ShowConfirm("Delete item",
		"This removes the saved item permanently. Continue?", func(ok bool) {
			if !ok {
				return
			}
			go func() {
				err := s.ui.client.DeleteItem(context.Background(), item.ID)
				fyne.Do(func() {
					if err != nil {
						dialog.ShowError(err, s.ui.window)
						return
					}
					for i := range s.items {
						if s.items[i].ID == item.ID {
							s.items = append(s.items[:i], s.items[i+1:]...)
							break
						}
					}
					s.refreshControls()
					s.list.Refresh()
					s.ui.showPopUp("Item deleted.")
				})
			}()
		}, s.ui.window)
}
