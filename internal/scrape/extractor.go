package scrape

import (
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Страница вопроса называется am2_NN.html, картинки лежат рядом,
// поэтому URL картинки получается заменой имени файла в URL страницы.
var detailFileRe = regexp.MustCompile(`(?i)am2_\d+\.html`)

// Extractor извлекает вопрос с сайта: находит на главной странице ссылку
// на страницу текущего вопроса и собирает из неё QuestionRecord.
type Extractor struct {
	fetcher Fetcher
	baseURL string
}

// NewExtractor создаёт новый Extractor.
// baseURL — адрес главной страницы сайта (например, "http://www.db-siken.com/").
func NewExtractor(fetcher Fetcher, baseURL string) *Extractor {
	return &Extractor{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// Extract загружает главную страницу, находит ссылку на страницу вопроса,
// загружает её и возвращает собранный QuestionRecord.
func (e *Extractor) Extract(ctx context.Context) (*QuestionRecord, error) {
	listing, err := e.fetcher.Fetch(ctx, e.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	detailURL, err := ResolveDetailURL(listing, e.baseURL)
	if err != nil {
		return nil, err
	}

	detail, err := e.fetcher.Fetch(ctx, detailURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail page: %w", err)
	}

	return BuildRecord(detail, detailURL), nil
}

// ResolveDetailURL находит на главной странице ссылку на страницу текущего
// вопроса и возвращает её абсолютный URL.
// Возвращает ErrLinkNotFound, если разметка страницы изменилась.
func ResolveDetailURL(listing *goquery.Document, baseURL string) (string, error) {
	href, ok := listing.Find("div.ansbg + div.img_margin > a").First().Attr("href")
	if !ok {
		return "", ErrLinkNotFound
	}

	return baseURL + href, nil
}

// BuildRecord собирает QuestionRecord из разобранной страницы вопроса.
// Отсутствие ожидаемых элементов не считается ошибкой: соответствующие
// поля просто остаются пустыми.
func BuildRecord(doc *goquery.Document, detailURL string) *QuestionRecord {
	record := &QuestionRecord{
		Number:    doc.Find(".qno").Text(),
		DetailURL: detailURL,
	}

	text := doc.Find(".qno + div").Text() + "\n\n"

	doc.Find(".selectBtn").Each(func(_ int, btn *goquery.Selection) {
		_, isCorrect := btn.Attr("id")

		choice := Choice{
			Label:     btn.Find("button").Text(),
			IsCorrect: isCorrect,
		}

		prev := btn.PrevFiltered("div")
		img := prev.Find("img")
		if img.Length() == 0 {
			// Текстовый вариант попадает строкой в тело вопроса.
			text += btn.Text() + ".  " + prev.Text() + "\n"
		} else {
			src, _ := img.Attr("src")
			choice.ImageURL = resolveImageURL(detailURL, src)
		}

		record.Choices = append(record.Choices, choice)
	})

	record.Text = text

	doc.Find(".qno + div").Find(".img_margin").Each(func(_ int, d *goquery.Selection) {
		src, ok := d.Find("img").Attr("src")
		if !ok {
			return
		}

		record.Illustrations = append(record.Illustrations, resolveImageURL(detailURL, src))
	})

	return record
}

// resolveImageURL превращает относительный src картинки в абсолютный URL,
// подставляя его вместо имени файла страницы вопроса.
func resolveImageURL(detailURL, src string) string {
	return detailFileRe.ReplaceAllString(detailURL, src)
}
