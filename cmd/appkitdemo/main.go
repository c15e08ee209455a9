// Command appkitdemo runs a headless demo of the appkit application
// toolkit: a fixed number of frames through the app lifecycle, with
// scripted input, a message round trip and a texture registry.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/container"
	"github.com/gogpu/appkit/gfx"
	"github.com/gogpu/appkit/input"
	"github.com/gogpu/appkit/msg"
)

const idTick msg.ID = 1

type tickMsg struct {
	Frame int64
}

func (*tickMsg) MsgID() msg.ID { return idTick }

// scriptedSource feeds one key press per frame, cycling WASD.
type scriptedSource struct {
	frame int
}

func (s *scriptedSource) Poll(emit func(input.Event)) {
	keys := []input.Key{input.KeyW, input.KeyA, input.KeyS, input.KeyD}
	emit(input.Event{Type: input.EventKeyDown, Key: keys[s.frame%len(keys)]})
	s.frame++
}

type demoApp struct {
	frame    int64
	inputs   *input.Manager
	codec    *msg.Codec
	dispatch *msg.Dispatcher
	wire     bytes.Buffer
	textures *gfx.Registry[gfx.TextureSetup]
	scores   *container.SortedMap[string, int]
}

func (a *demoApp) Init() appkit.State {
	a.inputs = input.NewManager(&scriptedSource{})

	a.codec = msg.NewCodec()
	a.codec.Register(idTick, func() msg.Message { return &tickMsg{} })
	a.dispatch = msg.NewDispatcher()
	a.dispatch.Subscribe(idTick, func(m msg.Message) {
		appkit.Logger().Debug("tick delivered", "frame", m.(*tickMsg).Frame)
	})

	a.textures = gfx.NewRegistry[gfx.TextureSetup]()
	for _, name := range []string{"tex:walls", "tex:floor", "tex:hud"} {
		loc := gfx.NewLocator(name)
		a.textures.Add(loc, gfx.TextureFromFile(loc, gfx.TextureBlueprint()))
	}

	a.scores = container.NewSortedMap[string, int]()
	return appkit.StateRunning
}

func (a *demoApp) Frame() appkit.State {
	a.frame++
	a.inputs.Update()
	for key := input.KeyA; key <= input.KeyZ; key++ {
		if a.inputs.Keyboard.KeyDown(key) {
			score, _ := a.scores.Get(key.String())
			a.scores.Set(key.String(), score+1)
		}
	}

	// encode a tick, then pump it straight back through the dispatcher
	if err := a.codec.Encode(&a.wire, &tickMsg{Frame: a.frame}); err != nil {
		log.Fatalf("encode tick: %v", err)
	}
	if _, err := a.dispatch.Pump(a.codec, &a.wire); err != nil {
		log.Fatalf("pump: %v", err)
	}
	return appkit.StateRunning
}

func (a *demoApp) Cleanup() appkit.State {
	fmt.Println("key press counts:")
	for key, count := range a.scores.All() {
		fmt.Printf("  %s: %d\n", key, count)
	}
	fmt.Printf("textures registered: %d\n", a.textures.Len())
	return appkit.StateDestroy
}

func main() {
	var (
		frames  = flag.Int("frames", 60, "number of frames to run")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		appkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	appkit.Run(&demoApp{}, appkit.WithMaxFrames(*frames))
	fmt.Printf("ran %d frames\n", *frames)
}
