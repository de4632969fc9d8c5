package dispatch

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/letsssgooo/sikenBot/internal/render"
	"github.com/letsssgooo/sikenBot/internal/scrape"
	"github.com/letsssgooo/sikenBot/internal/slack"
)

// DeliverFunc отправляет готовое сообщение адресату.
// Адресата выбирает вызывающая сторона: канал расписания или чат команды.
type DeliverFunc func(msg *slack.Message) error

// Dispatcher запускает конвейер "загрузить → извлечь → отрисовать → отправить".
type Dispatcher struct {
	extractor *scrape.Extractor
}

// NewDispatcher создаёт новый Dispatcher.
func NewDispatcher(extractor *scrape.Extractor) *Dispatcher {
	return &Dispatcher{
		extractor: extractor,
	}
}

// Dispatch выполняет один цикл викторины.
// Любая ошибка загрузки или извлечения логируется, и цикл обрывается без
// отправки: частично собранное сообщение никогда не публикуется.
func (d *Dispatcher) Dispatch(ctx context.Context, deliver DeliverFunc) {
	id := uuid.NewString()
	slog.Info("dispatching quiz", "dispatch_id", id)

	record, err := d.extractor.Extract(ctx)
	if err != nil {
		slog.Error("could not extract quiz", "dispatch_id", id, "err", err)
		return
	}

	msg := render.Render(record)

	if err := deliver(msg); err != nil {
		slog.Error("could not deliver quiz", "dispatch_id", id, "err", err)
		return
	}

	slog.Info("quiz delivered", "dispatch_id", id, "question", record.Number)
}
