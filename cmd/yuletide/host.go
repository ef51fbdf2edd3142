package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yuletide/audio"
	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/core"
	"github.com/lixenwraith/yuletide/render"
	"github.com/lixenwraith/yuletide/scene"
)

// Rows moved per PgUp/PgDn
const pageRows = 8

// host drives one scene session on a tcell screen
type host struct {
	screen  tcell.Screen
	term    *render.Terminal
	session *scene.Session
	sounds  *audio.SoundManager
}

func newHost(screen tcell.Screen, term *render.Terminal, session *scene.Session, sounds *audio.SoundManager) *host {
	return &host{
		screen:  screen,
		term:    term,
		session: session,
		sounds:  sounds,
	}
}

// handleEvent applies one input event, returns false to quit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			h.scroll(-1)
		case ev.Buttons()&tcell.WheelDown != 0:
			h.scroll(1)
		}

	case *tcell.EventResize:
		h.term.Resize()
		cols, rows := h.term.Size()
		log.Printf("resize: %dx%d", cols, rows)
		h.session.OnResize()
		h.screen.Sync()

	case *tcell.EventFocus:
		h.session.OnVisibility(!ev.Focused)
	}

	return true
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.scroll(-1)
	case tcell.KeyDown:
		h.scroll(1)
	case tcell.KeyPgUp:
		h.scroll(-pageRows)
	case tcell.KeyPgDn:
		h.scroll(pageRows)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'l', 'L':
			h.session.ToggleLights()
		case 's', 'S':
			h.session.ToggleSnow()
		case 'm', 'M':
			h.sounds.ToggleMute()
		}
	}
	return true
}

func (h *host) scroll(rows int) {
	h.session.OnScroll(h.term.ScrollBy(rows))
}

// tick advances the scene and draws one frame
func (h *host) tick(now time.Time) {
	h.session.Frame()
	h.term.SetStatus(h.statusLine())
	h.term.Draw(now)
}

func (h *host) statusLine() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	sound := "on"
	if h.sounds.Muted() {
		sound = "muted"
	}
	return fmt.Sprintf("[l]ights %s  [s]now %s  [m]ute %s  [q]uit",
		onOff(h.session.LightsOn()), onOff(h.session.SnowOn()), sound)
}

// run blocks until the user quits or the screen closes
func (h *host) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constant.EventQueueSize)
	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	h.tick(time.Now())

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.tick(now)
		}
	}
}
