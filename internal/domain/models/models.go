package models

import (
	"time"
)

// Файл для работы с моделями для базы данных, которые доступны извне.
// Обработчики создают экземпляры моделей, заполняют их данными и
// передают в соответствующую функцию в БД.

// TeamModel определяет модель для таблицы установок бота в командах
type TeamModel struct {
	ID        int
	TeamID    string
	TeamName  string
	BotToken  string
	Channel   string
	CreatedAt time.Time
}
