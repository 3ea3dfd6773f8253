package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/screens"
)

func TestMainMenuHandler(t *testing.T) {
	h := NewMainMenuHandler()

	screen, op, choices, cmd := h.HandleSelection(0)
	assert.Equal(t, screens.ScreenDeviceSelect, screen)
	assert.Equal(t, screens.OpLoadDevices, op)
	assert.Nil(t, choices)
	assert.Nil(t, cmd)

	screen, op, _, _ = h.HandleSelection(1)
	assert.Equal(t, screens.ScreenBrowser, screen)
	assert.Equal(t, screens.OpLoadDirectory, op)

	screen, op, _, cmd = h.HandleSelection(2)
	assert.Equal(t, screens.ScreenAbout, screen)
	assert.Empty(t, op)
	assert.Nil(t, cmd)

	_, _, _, cmd = h.HandleSelection(3)
	assert.NotNil(t, cmd, "exit must quit")

	screen, _, choices, cmd = h.HandleSelection(10)
	assert.Equal(t, screens.ScreenMain, screen)
	assert.Equal(t, screens.MainMenuChoices, choices)
	assert.Nil(t, cmd)
}

func TestDeviceMenuHandler(t *testing.T) {
	h := NewDeviceMenuHandler()
	list := drives.DeviceList{Devices: []string{"/dev/sda", "/dev/sdb"}, Preferred: 1}

	action := h.HandleSelection(1, list)
	assert.Equal(t, screens.MenuAction{
		Screen:    screens.ScreenDeviceSelect,
		Operation: screens.OpCheckMount,
		Index:     1,
		Target:    "/dev/sdb",
	}, action)

	// the row after the devices is Back
	assert.Equal(t, screens.ScreenMain, h.HandleSelection(2, list).Screen)
	assert.Equal(t, screens.ScreenMain, h.HandleSelection(0, drives.DeviceList{}).Screen)
}

func TestDeviceMenuConfirmation(t *testing.T) {
	h := NewDeviceMenuHandler()
	pending := screens.MenuAction{Screen: screens.ScreenDeviceSelect, Index: 3, Target: "/dev/sdd"}

	action, accepted := h.HandleConfirmation(0, pending)
	assert.True(t, accepted)
	assert.Equal(t, 3, action.Index)
	assert.Equal(t, "/dev/sdd", action.Target)

	action, accepted = h.HandleConfirmation(1, pending)
	assert.False(t, accepted)
	assert.Equal(t, screens.ScreenDeviceSelect, action.Screen)
}

func TestBrowserMenuHandler(t *testing.T) {
	h := NewBrowserMenuHandler()
	entries := []browse.Entry{
		{Name: "games", Kind: browse.Directory},
		{Name: "dangling", Kind: browse.Unknown},
		{Name: "zelda.iso", Kind: browse.File, Size: 10},
	}

	tests := []struct {
		name   string
		cursor int
		want   screens.MenuAction
	}{
		{"parent", 0, screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpLoadDirectory, Target: ".."}},
		{"directory", 1, screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpLoadDirectory, Index: 0, Target: "games"}},
		{"unknown", 2, screens.MenuAction{Screen: screens.ScreenBrowser}},
		{"image", 3, screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpSelectImage, Index: 2, Target: "zelda.iso"}},
		{"past the end", 4, screens.MenuAction{Screen: screens.ScreenBrowser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleSelection(tt.cursor, entries))
		})
	}
}
