package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/letsssgooo/sikenBot/internal/answer"
	"github.com/letsssgooo/sikenBot/internal/dispatch"
	"github.com/letsssgooo/sikenBot/internal/registry"
	"github.com/letsssgooo/sikenBot/internal/schedule"
	"github.com/letsssgooo/sikenBot/internal/slack"
	"github.com/letsssgooo/sikenBot/internal/storage"
)

// Слово, на которое бот отвечает викториной
const triggerWord = "quiz"

// Bot связывает входящие события Slack с конвейером викторины.
type Bot struct {
	client     slack.Client
	dispatcher *dispatch.Dispatcher
	scheduler  *schedule.Scheduler
	registry   *registry.Registry
	storage    storage.Storage
	channel    string // канал для викторин по расписанию
}

// NewBot создаёт нового бота.
// channel — имя канала, куда отправляются викторины по расписанию.
func NewBot(
	client slack.Client,
	dispatcher *dispatch.Dispatcher,
	scheduler *schedule.Scheduler,
	reg *registry.Registry,
	st storage.Storage,
	channel string,
) *Bot {
	return &Bot{
		client:     client,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		registry:   reg,
		storage:    st,
		channel:    channel,
	}
}

// ConnectTeams поднимает подключения для всех сохранённых команд и запускает
// расписание, если подключилась хотя бы одна. Уже подключённые команды
// пропускаются, чтобы не держать два подключения на один токен.
func (b *Bot) ConnectTeams(ctx context.Context) error {
	teams, err := b.storage.ListTeams(ctx)
	if err != nil {
		return err
	}

	for _, team := range teams {
		if b.registry.Connected(team.BotToken) {
			continue
		}

		b.registry.Track(team.BotToken, &registry.Handle{
			TeamID:  team.TeamID,
			Channel: team.Channel,
		})

		slog.Info("team connected", "team_id", team.TeamID)
	}

	if b.registry.Len() == 0 {
		return nil
	}

	return b.scheduler.Start(func() {
		b.dispatcher.Dispatch(context.Background(), func(msg *slack.Message) error {
			return b.client.PostMessage(context.Background(), b.channel, msg)
		})
	})
}

// Shutdown останавливает расписание. Аналог обработчика закрытия подключения.
func (b *Bot) Shutdown() {
	b.scheduler.Stop()
}

// HandleEvent обрабатывает одно событие Events API.
// На сообщение с триггерным словом бот отвечает викториной в тот же канал.
func (b *Bot) HandleEvent(ctx context.Context, ev *slack.EventCallback) {
	if ev.Event.Type != "message" || ev.Event.BotID != "" {
		return
	}

	if !strings.Contains(ev.Event.Text, triggerWord) {
		return
	}

	channel := ev.Event.Channel

	b.dispatcher.Dispatch(ctx, func(msg *slack.Message) error {
		return b.client.PostMessage(ctx, channel, msg)
	})
}

// HandleAction обрабатывает нажатие кнопки интерактивного сообщения.
// События с чужим callback id игнорируются без ошибки.
func (b *Bot) HandleAction(ctx context.Context, payload *slack.ActionPayload) error {
	ev := answer.FromPayload(payload)

	reply, ok := answer.Resolve(ev)
	if !ok {
		return nil
	}

	return b.client.Respond(ctx, ev.ResponseURL, reply)
}
