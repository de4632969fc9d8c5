package answer

import (
	"github.com/letsssgooo/sikenBot/internal/slack"
)

// Идентификатор callback'а викторины и имя кнопки правильного ответа
const (
	CallbackID    = "db_answer"
	ActionCorrect = "collect"
)

// Цвета раскрытия результата
const (
	colorCorrect = "good"
	colorWrong   = "danger"
)

// Event представляет нажатие кнопки в ранее отправленном сообщении.
type Event struct {
	CallbackID  string
	ActionName  string
	UserID      string
	ResponseURL string
	Original    slack.Message
}

// FromPayload собирает Event из callback payload Slack.
func FromPayload(payload *slack.ActionPayload) Event {
	ev := Event{
		CallbackID:  payload.CallbackID,
		UserID:      payload.User.ID,
		ResponseURL: payload.ResponseURL,
		Original:    payload.OriginalMessage,
	}

	if len(payload.Actions) != 0 {
		ev.ActionName = payload.Actions[0].Name
	}

	return ev
}

// Resolve строит сообщение, раскрывающее результат ответа.
// Возвращает (nil, false) для чужих callback id: такие события игнорируются.
// Сообщение заменяет исходное целиком и видно всему каналу.
func Resolve(ev Event) (*slack.Message, bool) {
	if ev.CallbackID != CallbackID {
		return nil, false
	}

	correct := ev.ActionName == ActionCorrect

	text := ":x: <@" + ev.UserID + "> 残念…"
	color := colorWrong
	if correct {
		text = ":white_check_mark: <@" + ev.UserID + "> 正解!"
		color = colorCorrect
	}

	return &slack.Message{
		Text: ev.Original.Text,
		Attachments: []slack.Attachment{{
			Text:       text,
			Fallback:   "失敗しました。",
			CallbackID: CallbackID,
			Color:      color,
		}},
		ResponseType:    "in_channel",
		ReplaceOriginal: false,
	}, true
}
