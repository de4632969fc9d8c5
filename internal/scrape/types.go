package scrape

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// LayoutMode определяет режим отображения вариантов ответа.
type LayoutMode int

const (
	// TextChoices — все варианты текстовые, кнопки в основном блоке.
	TextChoices LayoutMode = iota
	// ImageChoices — хотя бы один вариант с картинкой, каждый вариант отдельным блоком.
	ImageChoices
)

// Choice представляет один вариант ответа.
type Choice struct {
	Label     string
	IsCorrect bool
	ImageURL  string
}

// QuestionRecord представляет извлечённый со страницы вопрос.
type QuestionRecord struct {
	Number        string
	Text          string
	DetailURL     string
	Choices       []Choice
	Illustrations []string
}

// Layout возвращает режим отображения, выведенный из вариантов ответа.
func (r *QuestionRecord) Layout() LayoutMode {
	for _, choice := range r.Choices {
		if choice.ImageURL != "" {
			return ImageChoices
		}
	}

	return TextChoices
}

// Fetcher определяет интерфейс для получения разобранной HTML страницы.
type Fetcher interface {
	// Fetch загружает страницу по url и возвращает разобранный документ.
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}

// Ошибки извлечения
var ErrLinkNotFound = errors.New("link to detail page not found on listing page")
