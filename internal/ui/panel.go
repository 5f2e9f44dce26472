package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/storage"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 24
	ButtonHeight   = 40
	TabHeight      = 32
	SectionLabelH  = 20
	RowHeight      = 22
	statusBarH     = 90
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	tabActiveBg     = color.RGBA{76, 132, 96, 255}
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}
	tabHoverBg      = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	statusThinking  = color.RGBA{100, 180, 255, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	Active     func() bool // nil for plain buttons
	hovered    bool
	pressed    bool
}

func (b *Button) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

// Panel is the side panel with controls, move history and statistics.
type Panel struct {
	game *Game

	newGameBtn *Button
	modeTabs   []*Button
	diffTabs   []*Button
	colorTabs  []*Button

	historyY int
	scrollY  int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

// createButtons lays out all panel buttons top to bottom.
func (p *Panel) createButtons() {
	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2
	y := PanelPadding

	p.newGameBtn = &Button{X: x, Y: y, W: w, H: ButtonHeight, Label: "New Game (N)", OnClick: p.game.NewGameAction}
	y += ButtonHeight + SectionSpacing + SectionLabelH

	p.modeTabs = p.tabRow(x, y, w, []string{"vs Human", "vs Computer"},
		func(i int) func() {
			mode := []storage.GameMode{storage.ModeHumanVsHuman, storage.ModeHumanVsComputer}[i]
			return func() { p.game.SetMode(mode) }
		},
		func(i int) func() bool {
			mode := []storage.GameMode{storage.ModeHumanVsHuman, storage.ModeHumanVsComputer}[i]
			return func() bool { return p.game.Mode() == mode }
		})
	y += TabHeight + SectionSpacing + SectionLabelH

	p.diffTabs = p.tabRow(x, y, w, []string{"Easy", "Medium", "Hard"},
		func(i int) func() {
			return func() { p.game.SetDifficulty(engine.Difficulty(i)) }
		},
		func(i int) func() bool {
			return func() bool { return p.game.Difficulty() == engine.Difficulty(i) }
		})
	y += TabHeight + SectionSpacing + SectionLabelH

	p.colorTabs = p.tabRow(x, y, w, []string{"White", "Black"},
		func(i int) func() {
			return func() { p.game.SetPlayerColor(board.Color(i)) }
		},
		func(i int) func() bool {
			return func() bool { return p.game.PlayerColor() == board.Color(i) }
		})
	y += TabHeight + SectionSpacing

	p.historyY = y
}

func (p *Panel) tabRow(x, y, w int, labels []string, onClick func(int) func(), active func(int) func() bool) []*Button {
	tabW := w / len(labels)
	tabs := make([]*Button, len(labels))
	for i, label := range labels {
		tabs[i] = &Button{
			X: x + i*tabW, Y: y, W: tabW, H: TabHeight,
			Label:   label,
			OnClick: onClick(i),
			Active:  active(i),
		}
	}
	return tabs
}

func (p *Panel) buttons() []*Button {
	all := []*Button{p.newGameBtn}
	all = append(all, p.modeTabs...)
	all = append(all, p.diffTabs...)
	all = append(all, p.colorTabs...)
	return all
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	// Scroll the move history
	if _, wheelY := ebiten.Wheel(); wheelY != 0 && mx >= BoardSize && my >= p.historyY {
		p.scrollY = max(0, p.scrollY+int(wheelY*30))
	}

	handled := false
	for _, btn := range p.buttons() {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = btn.hovered && input.IsLeftPressed()
		if btn.hovered && input.IsLeftJustPressed() && !handled {
			btn.OnClick()
			handled = true
		}
	}
	return handled
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	p.drawPrimaryButton(screen, p.newGameBtn)

	p.drawSectionLabel(screen, "Game Mode (M)", p.modeTabs[0].Y-SectionLabelH)
	p.drawTabs(screen, p.modeTabs)
	p.drawSectionLabel(screen, "Difficulty (1/2/3)", p.diffTabs[0].Y-SectionLabelH)
	p.drawTabs(screen, p.diffTabs)
	p.drawSectionLabel(screen, "You Play (C)", p.colorTabs[0].Y-SectionLabelH)
	p.drawTabs(screen, p.colorTabs)

	p.drawSectionLabel(screen, "Moves", p.historyY)
	p.drawMoveHistory(screen, p.historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bg := accentColor
	if btn.pressed {
		bg = accentPressed
	} else if btn.hovered {
		bg = accentHover
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)
	drawTextCentered(screen, btn.Label, boldFace, float64(btn.X+btn.W/2), float64(btn.Y+btn.H/2), textPrimary)
}

func (p *Panel) drawTabs(screen *ebiten.Image, tabs []*Button) {
	for _, btn := range tabs {
		active := btn.Active != nil && btn.Active()

		bg := tabInactiveBg
		switch {
		case active:
			bg = tabActiveBg
		case btn.pressed:
			bg = buttonPressedBg
		case btn.hovered:
			bg = tabHoverBg
		}
		vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bg, false)

		border := buttonBorder
		if active {
			border = tabActiveBg
		} else if btn.hovered {
			border = accentColor
		}
		vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, border, false)

		fg := textSecondary
		if active {
			fg = textPrimary
		}
		drawTextCentered(screen, btn.Label, regularFace, float64(btn.X+btn.W/2), float64(btn.Y+btn.H/2), fg)
	}
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, y int) {
	drawText(screen, label, regularFace, float64(BoardSize+PanelPadding), float64(y), textMuted)
}

// drawMoveHistory lists moves in pairs, newest at the bottom of the
// scrolled window.
func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	moves := p.game.History()
	x := float64(BoardSize + PanelPadding)
	if len(moves) == 0 {
		drawText(screen, "No moves yet", regularFace, x, float64(startY+5), textMuted)
		return
	}

	maxY := ScreenHeight - statusBarH
	visibleRows := max(1, (maxY-startY)/RowHeight)
	totalRows := (len(moves) + 1) / 2

	maxScroll := max(0, totalRows-visibleRows)
	p.scrollY = min(p.scrollY, maxScroll*RowHeight)
	firstRow := maxScroll - p.scrollY/RowHeight

	y := startY
	for row := firstRow; row < totalRows && row < firstRow+visibleRows; row++ {
		if row%2 == 1 {
			vector.DrawFilledRect(screen, float32(x-4), float32(y-2),
				float32(PanelWidth-PanelPadding*2+8), float32(RowHeight), moveRowAlt, false)
		}
		drawText(screen, fmt.Sprintf("%d.", row+1), regularFace, x, float64(y), textMuted)
		drawText(screen, moves[row*2].String(), regularFace, x+36, float64(y), textPrimary)
		if row*2+1 < len(moves) {
			drawText(screen, moves[row*2+1].String(), regularFace, x+110, float64(y), textPrimary)
		}
		y += RowHeight
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - statusBarH + 10
	x := float64(BoardSize + PanelPadding)

	vector.DrawFilledRect(screen, float32(x), float32(statusY-10),
		float32(PanelWidth-PanelPadding*2), 1, dividerColor, false)

	var status string
	statusColor := textPrimary
	switch {
	case p.game.GameOver():
		status = p.game.GameResult()
		statusColor = statusGameOver
	case p.game.IsAIThinking():
		status = "Computer thinking..."
		statusColor = statusThinking
	default:
		status = p.game.SideToMove().String() + " to move"
	}
	drawText(screen, status, boldFace, x, float64(statusY), statusColor)

	if stats := p.game.Stats(); stats != nil {
		line := fmt.Sprintf("W %d  L %d  D %d  (%.0f%%)", stats.Wins, stats.Losses, stats.Draws, stats.WinRate())
		drawText(screen, line, regularFace, x, float64(statusY+26), textSecondary)
	}
	drawText(screen, "Depth "+fmt.Sprint(p.game.Difficulty().Depth())+" ply", regularFace, x, float64(statusY+48), textMuted)
}
