package render

import (
	"bytes"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 920
	imageHeight      = 760
	headerHeight     = 70
	legendHeight     = 60
	gridPaddingX     = 20
	cellPaddingX     = 6
	cellPaddingY     = 6
	cellBorderRadius = 6.0
	shadowOffset     = 3.0
	gridColumns      = 6
	gridRows         = 5
)

// Цветовая схема
var (
	bgColor     = color.RGBA{245, 246, 248, 255}
	textColor   = color.RGBA{80, 85, 90, 220}
	cellText    = color.RGBA{20, 24, 28, 230}
	bookedText  = color.RGBA{120, 40, 50, 255}
	shadowColor = color.RGBA{0, 0, 0, 20}
	todayBorder = color.NRGBA{255, 99, 71, 200}

	availableColor = color.RGBA{133, 193, 85, 220}
	partialColor   = color.RGBA{255, 200, 120, 230}
	bookedColor    = color.RGBA{255, 182, 193, 255}

	legendTextColor = color.RGBA{70, 74, 78, 220}
)

// GenerateCalendarImage рисует сетку площадки на ближайшие 30 дней.
// Дни идут подряд начиная с сегодняшнего, по шесть в ряду.
func GenerateCalendarImage(days []model.CalendarDay, lang i18n.Lang) ([]byte, error) {
	dc := createCanvas()
	dc.SetFontFace(basicfont.Face7x13)

	cellWidth := float64(imageWidth-gridPaddingX*2) / gridColumns
	cellHeight := float64(imageHeight-headerHeight-legendHeight) / gridRows

	drawHeader(dc)

	for i, day := range days {
		if i >= gridColumns*gridRows {
			break
		}
		col := i % gridColumns
		row := i / gridColumns
		x := float64(gridPaddingX) + float64(col)*cellWidth
		y := float64(headerHeight) + float64(row)*cellHeight
		drawDayCell(dc, day, x, y, cellWidth, cellHeight)
	}

	drawLegend(dc, lang)

	return encodeImage(dc)
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок
func drawHeader(dc *gg.Context) {
	title := "malwis.party"
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

// drawDayCell рисует одну ячейку дня со статусной заливкой
func drawDayCell(dc *gg.Context, day model.CalendarDay, x, y, cellWidth, cellHeight float64) {
	w := cellWidth - cellPaddingX*2
	h := cellHeight - cellPaddingY*2

	// Тень
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(x+cellPaddingX+shadowOffset, y+cellPaddingY+shadowOffset, w, h, cellBorderRadius)
	dc.Fill()

	// Заливка по статусу
	dc.SetColor(statusColor(day.Status))
	dc.DrawRoundedRectangle(x+cellPaddingX, y+cellPaddingY, w, h, cellBorderRadius)
	dc.Fill()

	// Рамка
	borderColor := darkenColor(statusColor(day.Status), 0.8)
	dc.SetColor(borderColor)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+cellPaddingX, y+cellPaddingY, w, h, cellBorderRadius)
	dc.Stroke()

	// Сегодняшний день выделяем толстой рамкой
	if day.IsToday {
		dc.SetColor(todayBorder)
		dc.SetLineWidth(3)
		dc.DrawRoundedRectangle(x+cellPaddingX, y+cellPaddingY, w, h, cellBorderRadius)
		dc.Stroke()
	}

	txtColor := cellText
	if day.Status == model.DayStatusBooked {
		txtColor = bookedText
	}

	dc.SetColor(txtColor)
	cx := x + cellWidth/2
	dc.DrawStringAnchored(strconv.Itoa(day.DayOfMonth), cx, y+cellHeight/2-8, 0.5, 0.5)
	dc.DrawStringAnchored(day.Weekday, cx, y+cellHeight/2+10, 0.5, 0.5)
}

// statusColor возвращает цвет ячейки по статусу дня
func statusColor(status model.DayStatus) color.RGBA {
	switch status {
	case model.DayStatusBooked:
		return bookedColor
	case model.DayStatusPartial:
		return partialColor
	default:
		return availableColor
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawLegend рисует легенду статусов под сеткой
func drawLegend(dc *gg.Context, lang i18n.Lang) {
	legendItems := []struct {
		Label string
		Clr   color.Color
	}{
		{i18n.T(lang, "leg-avail"), availableColor},
		{i18n.T(lang, "leg-fast"), partialColor},
		{i18n.T(lang, "leg-full"), bookedColor},
	}

	boxW := 20.0
	boxH := 14.0
	liX := float64(gridPaddingX)
	liY := float64(imageHeight-legendHeight) + 20

	for _, item := range legendItems {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(liX, liY, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(item.Label, liX+boxW+8, liY+boxH/2+1, 0, 0.3)

		w, _ := dc.MeasureString(item.Label)
		liX += boxW + 8 + w + 30
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
