package main

import (
	"flag"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/hmidgg/chess/pkg"
	"github.com/hmidgg/chess/pkg/gui"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	errColor    = color.New(color.FgRed, color.Bold)
	resultColor = color.New(color.FgGreen, color.Bold)
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	configPath := flag.String("config", "", "path to a JSON config file")
	fen := flag.String("fen", "", "start from this position instead of the initial one")
	theme := flag.String("theme", "", "theme name, overrides the config")
	exitAfter := flag.String("exit-after", "", "how long the final board stays up, e.g. 3s; 0 waits for q")
	snapshot := flag.String("snapshot", "", "write the final board as a PNG to this path")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail(errors.New("non-interactive terminals are not supported"))
	}
	pkg.InitLog(*logPath, "CLIENT: ")

	cfg, err := gui.LoadConfig(*configPath)
	if err != nil {
		fail(err)
	}
	if *fen != "" {
		cfg.FEN = *fen
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *exitAfter != "" {
		cfg.ExitAfter = *exitAfter
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	app, err := newApp(cfg)
	if err != nil {
		fail(err)
	}
	log.Println("New game")
	if err := app.Run(); err != nil {
		fail(err)
	}

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, cfg, app); err != nil {
			fail(err)
		}
	}
	if status := app.Status(); status.Terminal() {
		resultColor.Println(status.Result())
	}
}

// newApp wires the engine, the controller and the terminal surface
func newApp(cfg gui.Config) (*gui.App, error) {
	engine := pkg.NewEngine()
	if cfg.FEN != "" {
		var err error
		if engine, err = pkg.NewEngineFromFEN(cfg.FEN); err != nil {
			return nil, err
		}
	}
	theme, err := cfg.LoadTheme()
	if err != nil {
		return nil, err
	}
	sprites, err := cfg.LoadSprites()
	if err != nil {
		return nil, err
	}
	promotion, err := cfg.PromotionKind()
	if err != nil {
		return nil, err
	}
	delay, err := cfg.ExitDelay()
	if err != nil {
		return nil, err
	}

	ctrl := pkg.NewController(engine,
		pkg.WithPromotion(promotion),
		pkg.WithEventHandler(func(ev pkg.Event) {
			log.Printf("%s %s", ev.Type(), ev.Encode())
		}),
	)
	players := pkg.NewPlayers(cfg.WhiteName, cfg.BlackName)
	return gui.NewApp(ctrl, players, sprites, theme, delay), nil
}

func writeSnapshot(path string, cfg gui.Config, app *gui.App) error {
	theme, err := cfg.LoadTheme()
	if err != nil {
		return err
	}
	surface, err := gui.NewRasterSurface(cfg.CellSize, theme)
	if err != nil {
		return err
	}
	plan, err := app.Plan()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "snapshot")
	}
	if err := surface.WritePNG(f, plan); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "snapshot")
}

func fail(err error) {
	log.Printf("fatal: %+v", err)
	errColor.Fprintln(os.Stderr, err)
	os.Exit(1)
}
