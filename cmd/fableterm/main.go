package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fableterm/fableterm/audio"
	"github.com/fableterm/fableterm/background"
	"github.com/fableterm/fableterm/config"
	"github.com/fableterm/fableterm/input"
	"github.com/fableterm/fableterm/player"
	"github.com/fableterm/fableterm/render"
	"github.com/fableterm/fableterm/story"
)

var (
	storyFlag  = flag.String("story", "story.yaml", "Story file to play")
	configFlag = flag.String("config", "", "Optional config file overriding defaults")
	startFlag  = flag.String("start", "", "Start slide (default: first slide by name)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/fableterm.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	// Restore the terminal even when the loop panics, stack to stderr
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "fableterm crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := story.Load(*storyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load story: %v\n", err)
		os.Exit(1)
	}

	start := *startFlag
	if start == "" {
		names := store.SlideNames()
		if len(names) == 0 {
			fmt.Fprintln(os.Stderr, "story has no slides")
			os.Exit(1)
		}
		start = names[0]
	}

	var cues *audio.Cues
	if cfg.Audio && !*muteFlag {
		if cues, err = audio.NewCues(); err != nil {
			log.Printf("audio init failed, continuing silent: %v", err)
		}
		defer cues.Close()
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	backgrounds := background.NewService(store)
	ctrl := player.NewController(cfg, store, backgrounds, start)
	ctrl.OnSlideChange = func(name string) {
		log.Printf("now showing slide %q", name)
		cues.SlideChanged()
	}
	router := input.NewRouter(ctrl, input.Layout{
		OriginY:   render.ChoicesOriginY(),
		Spacing:   cfg.ChoiceSpacing,
		Tolerance: cfg.HitTolerance,
	})

	run(screen, cfg, ctrl, router, cues, store)
}

// run drives the cooperative tick loop: one goroutine pipes terminal events
// into a channel, the ticker advances playback with measured elapsed time.
func run(screen tcell.Screen, cfg config.Config, ctrl *player.Controller,
	router *input.Router, cues *audio.Cues, store *story.Store) {

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	var prevButtons tcell.ButtonMask
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, store) {
					return
				}

			case *tcell.EventMouse:
				x, y := ev.Position()
				router.PointerMoved(x, y)
				// Act on the press edge only; motion with the button
				// held must not re-click
				pressed := ev.Buttons()&tcell.Button1 != 0 &&
					prevButtons&tcell.Button1 == 0
				prevButtons = ev.Buttons()
				if pressed && router.Clicked() {
					cues.Selected()
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			ctrl.Tick(dt)
			render.Draw(screen, ctrl.Display(), cfg.ChoiceSpacing)
		}
	}
}

// handleKey routes one key event. Returns false to quit.
func handleKey(ev *tcell.EventKey, store *story.Store) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
		if err := store.Save(*storyFlag); err != nil {
			log.Printf("story save failed: %v", err)
		} else {
			log.Printf("story saved to %s", *storyFlag)
		}
	}
	return true
}
