package slack

import "context"

// Action представляет кнопку в интерактивном сообщении.
type Action struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Text  string `json:"text"`
	Value string `json:"value,omitempty"`
}

// Attachment представляет один блок интерактивного сообщения.
type Attachment struct {
	Title      string   `json:"title,omitempty"`
	Text       string   `json:"text,omitempty"`
	Fallback   string   `json:"fallback,omitempty"`
	CallbackID string   `json:"callback_id,omitempty"`
	Color      string   `json:"color,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	Actions    []Action `json:"actions,omitempty"`
}

// Message представляет сообщение с интерактивными блоками.
type Message struct {
	Text            string       `json:"text"`
	Attachments     []Attachment `json:"attachments,omitempty"`
	ResponseType    string       `json:"response_type,omitempty"`
	ReplaceOriginal bool         `json:"replace_original"`
}

// User представляет пользователя Slack.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel представляет канал.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActionPayload представляет callback от кнопки интерактивного сообщения.
type ActionPayload struct {
	Type            string   `json:"type"`
	CallbackID      string   `json:"callback_id"`
	Actions         []Action `json:"actions"`
	User            User     `json:"user"`
	Channel         Channel  `json:"channel"`
	OriginalMessage Message  `json:"original_message"`
	ResponseURL     string   `json:"response_url"`
}

// EventCallback представляет событие от Events API.
type EventCallback struct {
	Type      string `json:"type"`
	TeamID    string `json:"team_id"`
	Challenge string `json:"challenge,omitempty"`
	Event     struct {
		Type    string `json:"type"`
		Text    string `json:"text"`
		User    string `json:"user"`
		Channel string `json:"channel"`
		BotID   string `json:"bot_id,omitempty"`
	} `json:"event"`
}

// Client определяет интерфейс Slack клиента.
type Client interface {
	// PostMessage отправляет сообщение в канал.
	PostMessage(ctx context.Context, channel string, msg *Message) error

	// Respond отвечает на интерактивный callback по response_url.
	Respond(ctx context.Context, responseURL string, msg *Message) error
}
