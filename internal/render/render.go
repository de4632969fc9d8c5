package render

import (
	"github.com/letsssgooo/sikenBot/internal/answer"
	"github.com/letsssgooo/sikenBot/internal/scrape"
	"github.com/letsssgooo/sikenBot/internal/slack"
)

// Цвета и служебные строки блоков
const (
	colorPrimary  = "good"
	colorImage    = "#808080"
	fallbackText  = "失敗しました。"
	detailHint    = "\n\n詳細や画像が表示されていない場合はこちらへ\n"
	actionCorrect = answer.ActionCorrect
	actionWrong   = "wrong"
)

// Render превращает QuestionRecord в интерактивное сообщение.
// Чистая функция: одинаковый record даёт одинаковое сообщение, никакого I/O.
func Render(record *scrape.QuestionRecord) *slack.Message {
	primary := slack.Attachment{
		Title:      record.Text,
		Text:       detailHint + record.DetailURL,
		Fallback:   fallbackText,
		CallbackID: answer.CallbackID,
		Color:      colorPrimary,
	}

	if record.Layout() == scrape.TextChoices {
		for _, choice := range record.Choices {
			primary.Actions = append(primary.Actions, choiceAction(choice))
		}

		return &slack.Message{
			Text:        record.Number,
			Attachments: []slack.Attachment{primary},
		}
	}

	// В одном блоке помещается только одна картинка, поэтому в режиме
	// с картинками каждая иллюстрация и каждый вариант — отдельный блок.
	attachments := []slack.Attachment{primary}

	for _, imageURL := range record.Illustrations {
		attachments = append(attachments, slack.Attachment{
			Text:     record.Number,
			Color:    colorImage,
			ImageURL: imageURL,
		})
	}

	for _, choice := range record.Choices {
		attachments = append(attachments, slack.Attachment{
			Text:       choice.Label,
			ImageURL:   choice.ImageURL,
			Color:      colorImage,
			CallbackID: answer.CallbackID,
			Actions:    []slack.Action{choiceAction(choice)},
		})
	}

	return &slack.Message{
		Text:        record.Number,
		Attachments: attachments,
	}
}

// choiceAction превращает вариант ответа в кнопку.
// Правильность кодируется именем кнопки, а не её текстом.
func choiceAction(choice scrape.Choice) slack.Action {
	name := actionWrong
	if choice.IsCorrect {
		name = actionCorrect
	}

	return slack.Action{
		Type: "button",
		Name: name,
		Text: choice.Label,
	}
}
