// Package ui is the Ebiten front end: it draws the session each frame and
// translates mouse and key presses into session calls.
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Memory-Match/internal/assets"
	"github.com/Garsondee/Memory-Match/internal/config"
	"github.com/Garsondee/Memory-Match/internal/game"
)

// setWindowSize is swapped out in tests.
var setWindowSize = ebiten.SetWindowSize

// Game implements ebiten.Game on top of a game.Session.
type Game struct {
	cfg     config.Config
	session *game.Session
	faces   *FaceCache
	moveLog *MoveLog
	log     zerolog.Logger

	width  int
	height int
	board  boardLayout

	menu []*button
	back *button

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
	status        string // one-line feedback on the won screen
}

// New creates the front end and its session, dealing from the faces the
// provider supplies. Extra options are passed to the session.
func New(cfg config.Config, provider assets.Provider, log zerolog.Logger, opts ...game.SessionOption) (*Game, error) {
	faces, err := provider.Faces()
	if err != nil {
		return nil, fmt.Errorf("load faces: %w", err)
	}
	log.Info().Int("faces", len(faces)).Msg("face pool ready")

	g := &Game{
		cfg:      cfg,
		faces:    NewFaceCache(cfg.CardSize, log),
		moveLog:  NewMoveLog(),
		log:      log,
		prevKeys: make(map[ebiten.Key]bool),
		back: &button{
			rect:       rect{x: boardPad, y: 8, w: 150, h: 34},
			label:      "Back to menu",
			color:      colorGray,
			hoverColor: colorLightGray,
		},
	}

	var labels, ids []string
	for _, d := range game.Difficulties() {
		labels = append(labels, d.String())
		ids = append(ids, d.Label)
	}
	g.menu = menuButtons(labels, ids)

	sessionOpts := []game.SessionOption{
		game.WithRevealDelay(cfg.RevealDelay),
		game.WithLogger(log),
		game.WithEventListener(g.moveLog.AddEvent),
	}
	if cfg.Seed != 0 {
		sessionOpts = append(sessionOpts, game.WithSeed(cfg.Seed))
	}
	g.session = game.NewSession(faces, append(sessionOpts, opts...)...)
	g.syncWindow()
	return g, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *game.Session {
	return g.session
}

// Start deals a game straight away, skipping the menu.
func (g *Game) Start(difficulty string) error {
	d, err := game.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	if err := g.session.SelectDifficulty(d.Label); err != nil {
		return err
	}
	g.syncWindow()
	return nil
}

func (g *Game) Update() error {
	g.handleInput()
	dt := time.Second / time.Duration(ebiten.TPS())
	g.session.Tick(dt)
	return nil
}

// edgeKeys are the keys handled on press (not while held).
var edgeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.KeyR, ebiten.KeyM, ebiten.KeyC, ebiten.KeyEscape,
}

// handleInput polls Ebiten and dispatches edge-triggered presses.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.updateHover(mx, my)

	currentKeys := make(map[ebiten.Key]bool, len(edgeKeys))
	for _, k := range edgeKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !g.prevKeys[k] {
			g.handleKey(k)
		}
	}
	g.prevKeys = currentKeys

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft {
			g.handleClick(mx, my)
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (g *Game) updateHover(mx, my int) {
	if g.session.Screen() == game.ScreenMenu {
		for _, b := range g.menu {
			b.checkHover(mx, my)
		}
		return
	}
	g.back.checkHover(mx, my)
}

// handleKey applies one key press. Number keys pick a difficulty on the menu;
// R, M and C act on the won screen; Escape leaves a game in progress.
func (g *Game) handleKey(k ebiten.Key) {
	switch g.session.Screen() {
	case game.ScreenMenu:
		idx := map[ebiten.Key]int{ebiten.Key1: 0, ebiten.Key2: 1, ebiten.Key3: 2}
		if i, ok := idx[k]; ok && i < len(g.menu) {
			g.selectDifficulty(g.menu[i].difficulty)
		}
	case game.ScreenPlaying:
		if k == ebiten.KeyEscape {
			g.returnToMenu()
		}
	case game.ScreenWon:
		switch k {
		case ebiten.KeyR:
			g.status = ""
			g.session.Restart()
		case ebiten.KeyM, ebiten.KeyEscape:
			g.returnToMenu()
		case ebiten.KeyC:
			g.copyResult()
		}
	}
	g.syncWindow()
}

// handleClick applies one left click at window coordinates (mx, my).
func (g *Game) handleClick(mx, my int) {
	switch g.session.Screen() {
	case game.ScreenMenu:
		for _, b := range g.menu {
			if b.contains(mx, my) {
				g.selectDifficulty(b.difficulty)
				break
			}
		}
	case game.ScreenPlaying, game.ScreenWon:
		if g.back.contains(mx, my) {
			g.returnToMenu()
			break
		}
		if row, col, ok := g.board.cardAt(mx, my); ok {
			g.session.RevealAt(row, col)
		}
	}
	g.syncWindow()
}

func (g *Game) selectDifficulty(label string) {
	if err := g.session.SelectDifficulty(label); err != nil {
		g.log.Error().Err(err).Str("difficulty", label).Msg("cannot start game")
	}
}

func (g *Game) returnToMenu() {
	g.status = ""
	g.session.ReturnToMenu()
	g.moveLog.Clear()
}

// syncWindow resizes the window when the screen or grid changes.
func (g *Game) syncWindow() {
	side := 0
	if d, ok := g.session.Difficulty(); ok {
		side = d.Side
	}
	g.board = boardLayout{side: side, card: g.cfg.CardSize, margin: g.cfg.CardMargin}
	w, h := WindowSize(g.session.Screen(), side, g.cfg.CardSize, g.cfg.CardMargin)
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	setWindowSize(w, h)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
