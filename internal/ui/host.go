package ui

import (
	"go.uber.org/zap"

	"navctl/internal/nav"
	"navctl/internal/slot"
)

// slotHost tracks which Screen the controller mounted into each render slot.
type slotHost struct {
	screens [slot.Count]*Screen
	log     *zap.Logger
}

func (h *slotHost) Mount(i int, inst nav.Instance) {
	s, _ := inst.(*Screen)
	h.screens[i] = s
	if s != nil {
		h.log.Debug("screen mounted", zap.Int("slot", i), zap.String("page", s.page.ID))
	}
}

func (h *slotHost) Unmount(i int, inst nav.Instance) {
	if s, _ := inst.(*Screen); s != nil && h.screens[i] == s {
		h.screens[i] = nil
		h.log.Debug("screen unmounted", zap.Int("slot", i), zap.String("page", s.page.ID))
	}
}

// Screen returns the screen in slot i, or nil.
func (h *slotHost) Screen(i int) *Screen {
	if i < 0 || i >= slot.Count {
		return nil
	}
	return h.screens[i]
}
