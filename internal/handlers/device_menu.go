package handlers

import (
	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/screens"
)

// DeviceMenuHandler handles device selector choices
type DeviceMenuHandler struct{}

// NewDeviceMenuHandler creates a new device menu handler
func NewDeviceMenuHandler() *DeviceMenuHandler {
	return &DeviceMenuHandler{}
}

// HandleSelection maps a cursor position in the device list to an action.
// Picking a device asks for a mount check before it becomes current; the
// trailing Back entry returns to the main menu.
func (h *DeviceMenuHandler) HandleSelection(cursor int, list drives.DeviceList) screens.MenuAction {
	if cursor < 0 || cursor >= len(list.Devices) {
		return screens.MenuAction{Screen: screens.ScreenMain}
	}
	return screens.MenuAction{
		Screen:    screens.ScreenDeviceSelect,
		Operation: screens.OpCheckMount,
		Index:     cursor,
		Target:    list.Devices[cursor],
	}
}

// HandleConfirmation resolves the "device is mounted, use anyway?" prompt.
// cursor 0 is Yes.
func (h *DeviceMenuHandler) HandleConfirmation(cursor int, pending screens.MenuAction) (action screens.MenuAction, accepted bool) {
	if cursor == 0 {
		return screens.MenuAction{Screen: screens.ScreenDeviceSelect, Index: pending.Index, Target: pending.Target}, true
	}
	return screens.MenuAction{Screen: screens.ScreenDeviceSelect}, false
}
