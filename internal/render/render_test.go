package render

import (
	"testing"

	"github.com/letsssgooo/sikenBot/internal/answer"
	"github.com/letsssgooo/sikenBot/internal/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRecord() *scrape.QuestionRecord {
	return &scrape.QuestionRecord{
		Number:    "平成30年秋期 問12",
		Text:      "問題文\n\nア.  第一正規形\nイ.  第二正規形\nウ.  第三正規形\n",
		DetailURL: "http://www.db-siken.com/kakomon/05_aki/am2_12.html",
		Choices: []scrape.Choice{
			{Label: "ア"},
			{Label: "イ", IsCorrect: true},
			{Label: "ウ"},
		},
	}
}

func imageRecord() *scrape.QuestionRecord {
	return &scrape.QuestionRecord{
		Number:    "平成30年秋期 問5",
		Text:      "問題文\n\n",
		DetailURL: "http://www.db-siken.com/kakomon/05_aki/am2_5.html",
		Choices: []scrape.Choice{
			{Label: "ア", IsCorrect: true, ImageURL: "http://www.db-siken.com/kakomon/05_aki/img/05a.gif"},
			{Label: "イ", ImageURL: "http://www.db-siken.com/kakomon/05_aki/img/05b.gif"},
		},
		Illustrations: []string{
			"http://www.db-siken.com/kakomon/05_aki/img/05q.gif",
		},
	}
}

func TestRender_TextChoices_SingleBlock(t *testing.T) {
	record := textRecord()

	msg := Render(record)

	assert.Equal(t, record.Number, msg.Text)
	require.Len(t, msg.Attachments, 1)

	primary := msg.Attachments[0]
	assert.Equal(t, record.Text, primary.Title)
	assert.Contains(t, primary.Text, record.DetailURL)
	assert.Equal(t, answer.CallbackID, primary.CallbackID)
	assert.Equal(t, "good", primary.Color)

	// Кнопки в порядке вариантов на странице
	require.Len(t, primary.Actions, 3)
	assert.Equal(t, "ア", primary.Actions[0].Text)
	assert.Equal(t, "イ", primary.Actions[1].Text)
	assert.Equal(t, "ウ", primary.Actions[2].Text)

	assert.Equal(t, "wrong", primary.Actions[0].Name)
	assert.Equal(t, answer.ActionCorrect, primary.Actions[1].Name)
	assert.Equal(t, "wrong", primary.Actions[2].Name)
}

func TestRender_ImageChoices_BlockPerChoice(t *testing.T) {
	record := imageRecord()

	msg := Render(record)

	// 1 основной блок + 1 иллюстрация + 2 варианта
	require.Len(t, msg.Attachments, 4)

	primary := msg.Attachments[0]
	assert.Empty(t, primary.Actions)
	assert.Equal(t, record.Text, primary.Title)

	illustration := msg.Attachments[1]
	assert.Equal(t, record.Number, illustration.Text)
	assert.Equal(t, record.Illustrations[0], illustration.ImageURL)
	assert.Empty(t, illustration.Actions)

	for i, att := range msg.Attachments[2:] {
		choice := record.Choices[i]

		assert.Equal(t, choice.Label, att.Text)
		assert.Equal(t, choice.ImageURL, att.ImageURL)
		assert.Equal(t, answer.CallbackID, att.CallbackID)
		require.Len(t, att.Actions, 1)
		assert.Equal(t, choice.Label, att.Actions[0].Text)
	}

	assert.Equal(t, answer.ActionCorrect, msg.Attachments[2].Actions[0].Name)
	assert.Equal(t, "wrong", msg.Attachments[3].Actions[0].Name)
}

func TestRender_Pure(t *testing.T) {
	first := Render(imageRecord())
	second := Render(imageRecord())

	assert.Equal(t, first, second)
}
