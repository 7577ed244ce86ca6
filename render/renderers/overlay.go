package renderers

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/slicer/constants"
	"github.com/lixenwraith/slicer/render"
)

// OverlayRenderer draws the combo banner, the score and the start and pause hints
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render draws text last so it stays legible over everything else
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Session

	if combo := s.Combo(); combo > 1 {
		text := strconv.Itoa(combo) + constants.ComboSuffix
		_, row := ctx.ToCell(0, constants.ComboTextY)
		r.drawCentered(ctx, buf, row, text)
	}

	x, y := ctx.ToCell(constants.ScoreTextX, constants.ScoreTextY)
	drawBoxed(buf, x, y, constants.ScorePrefix+strconv.Itoa(s.Score()))

	if s.IsPlaying() {
		drawBoxed(buf, 0, ctx.ScreenHeight-1, constants.PauseHint)
		return
	}

	mid := ctx.ScreenHeight / 2
	r.drawCentered(ctx, buf, mid-2, constants.TitleText)
	r.drawCentered(ctx, buf, mid, constants.MoveHint)
	if s.Score() == 0 {
		r.drawCentered(ctx, buf, mid+2, constants.StartHint)
	} else {
		r.drawCentered(ctx, buf, mid+2, constants.ResumeHint)
	}
}

func (r *OverlayRenderer) drawCentered(ctx render.RenderContext, buf *render.RenderBuffer, row int, text string) {
	col := ctx.CenterColumn(runewidth.StringWidth(text) + 2)
	drawBoxed(buf, col, row, text)
}

// drawBoxed writes bold text padded by one outline cell on each side
func drawBoxed(buf *render.RenderBuffer, x, y int, text string) {
	buf.SetWithBg(x, y, ' ', render.RgbText, render.RgbOutline, false)
	n := buf.SetText(x+1, y, text, render.RgbText, render.RgbOutline, true)
	buf.SetWithBg(x+1+n, y, ' ', render.RgbText, render.RgbOutline, false)
}
