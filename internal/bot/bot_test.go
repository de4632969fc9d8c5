package bot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/letsssgooo/sikenBot/internal/answer"
	"github.com/letsssgooo/sikenBot/internal/dispatch"
	"github.com/letsssgooo/sikenBot/internal/domain/models"
	"github.com/letsssgooo/sikenBot/internal/registry"
	"github.com/letsssgooo/sikenBot/internal/schedule"
	"github.com/letsssgooo/sikenBot/internal/scrape"
	"github.com/letsssgooo/sikenBot/internal/slack"
	"github.com/letsssgooo/sikenBot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL       = "http://www.db-siken.com/"
	detailPageURL = baseURL + "kakomon/05_aki/am2_3.html"
)

const listingHTML = `<html><body>
<div class="ansbg"></div>
<div class="img_margin"><a href="kakomon/05_aki/am2_3.html">問3</a></div>
</body></html>`

const detailHTML = `<html><body>
<div class="qno">問3</div>
<div>問題文</div>
<div>a</div><div class="selectBtn" id="x"><button>ア</button></div>
<div>b</div><div class="selectBtn"><button>イ</button></div>
</body></html>`

// fakeClient записывает отправленные сообщения.
type fakeClient struct {
	posted    map[string][]*slack.Message
	responses map[string][]*slack.Message
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		posted:    make(map[string][]*slack.Message),
		responses: make(map[string][]*slack.Message),
	}
}

func (c *fakeClient) PostMessage(_ context.Context, channel string, msg *slack.Message) error {
	c.posted[channel] = append(c.posted[channel], msg)
	return nil
}

func (c *fakeClient) Respond(_ context.Context, responseURL string, msg *slack.Message) error {
	c.responses[responseURL] = append(c.responses[responseURL], msg)
	return nil
}

// fakeFetcher отдаёт заранее заданные страницы по URL.
type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*goquery.Document, error) {
	html, ok := f.pages[url]
	if !ok {
		return nil, errors.New("page unreachable")
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func newTestBot(t *testing.T, client slack.Client, st storage.Storage) *Bot {
	t.Helper()

	dispatcher := dispatch.NewDispatcher(scrape.NewExtractor(&fakeFetcher{pages: map[string]string{
		baseURL:       listingHTML,
		detailPageURL: detailHTML,
	}}, baseURL))

	scheduler := schedule.NewScheduler("0 9,13,18 * * 1-5", time.UTC)
	t.Cleanup(scheduler.Stop)

	return NewBot(client, dispatcher, scheduler, registry.NewRegistry(), st, "ipa-db")
}

func TestHandleEvent_TriggerWord_PostsQuiz(t *testing.T) {
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())

	ev := &slack.EventCallback{Type: "event_callback"}
	ev.Event.Type = "message"
	ev.Event.Text = "quiz please"
	ev.Event.Channel = "C1"

	b.HandleEvent(context.Background(), ev)

	require.Len(t, client.posted["C1"], 1)
	assert.Equal(t, "問3", client.posted["C1"][0].Text)
}

func TestHandleEvent_NoTriggerWord_Ignored(t *testing.T) {
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())

	ev := &slack.EventCallback{Type: "event_callback"}
	ev.Event.Type = "message"
	ev.Event.Text = "hello there"
	ev.Event.Channel = "C1"

	b.HandleEvent(context.Background(), ev)

	assert.Empty(t, client.posted)
}

func TestHandleEvent_BotMessage_Ignored(t *testing.T) {
	// Сообщения ботов игнорируются, иначе бот зациклится на своих постах
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())

	ev := &slack.EventCallback{Type: "event_callback"}
	ev.Event.Type = "message"
	ev.Event.Text = "quiz"
	ev.Event.Channel = "C1"
	ev.Event.BotID = "B1"

	b.HandleEvent(context.Background(), ev)

	assert.Empty(t, client.posted)
}

func TestHandleAction_Disclosure(t *testing.T) {
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())

	payload := &slack.ActionPayload{
		CallbackID:      answer.CallbackID,
		Actions:         []slack.Action{{Type: "button", Name: answer.ActionCorrect, Text: "ア"}},
		User:            slack.User{ID: "U1"},
		OriginalMessage: slack.Message{Text: "問3"},
		ResponseURL:     "https://hooks.slack.com/actions/z",
	}

	err := b.HandleAction(context.Background(), payload)
	require.NoError(t, err)

	replies := client.responses["https://hooks.slack.com/actions/z"]
	require.Len(t, replies, 1)
	assert.Equal(t, "in_channel", replies[0].ResponseType)
	assert.Contains(t, replies[0].Attachments[0].Text, "正解")
}

func TestHandleAction_ForeignCallbackID_NoOp(t *testing.T) {
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())

	payload := &slack.ActionPayload{
		CallbackID:  "other_feature",
		ResponseURL: "https://hooks.slack.com/actions/z",
	}

	err := b.HandleAction(context.Background(), payload)
	require.NoError(t, err)

	assert.Empty(t, client.responses)
}

func TestConnectTeams_TracksAndStartsSchedule(t *testing.T) {
	client := newFakeClient()
	st := storage.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, st.SaveTeam(ctx, &models.TeamModel{TeamID: "T1", BotToken: "xoxb-1"}))
	require.NoError(t, st.SaveTeam(ctx, &models.TeamModel{TeamID: "T2", BotToken: "xoxb-2"}))

	b := newTestBot(t, client, st)

	require.NoError(t, b.ConnectTeams(ctx))
	assert.Equal(t, 2, b.registry.Len())
	assert.True(t, b.scheduler.Running())

	// Повторное подключение не плодит дубликаты
	require.NoError(t, b.ConnectTeams(ctx))
	assert.Equal(t, 2, b.registry.Len())

	b.Shutdown()
	assert.False(t, b.scheduler.Running())
}

func TestConnectTeams_NoTeams_NoSchedule(t *testing.T) {
	b := newTestBot(t, newFakeClient(), storage.NewMemoryStorage())

	require.NoError(t, b.ConnectTeams(context.Background()))
	assert.False(t, b.scheduler.Running())
}

func TestServer_URLVerification(t *testing.T) {
	b := newTestBot(t, newFakeClient(), storage.NewMemoryStorage())
	server := NewServer(b)

	body := strings.NewReader(`{"type":"url_verification","challenge":"ch-42"}`)
	req := httptest.NewRequest(http.MethodPost, "/slack/events", body)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ch-42", rec.Body.String())
}

func TestServer_ActionsEndpoint(t *testing.T) {
	client := newFakeClient()
	b := newTestBot(t, client, storage.NewMemoryStorage())
	server := NewServer(b)

	payload := `{
		"type": "interactive_message",
		"callback_id": "db_answer",
		"actions": [{"type": "button", "name": "wrong", "text": "イ"}],
		"user": {"id": "U9"},
		"original_message": {"text": "問3"},
		"response_url": "https://hooks.slack.com/actions/w"
	}`

	form := url.Values{"payload": {payload}}
	req := httptest.NewRequest(http.MethodPost, "/slack/actions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	replies := client.responses["https://hooks.slack.com/actions/w"]
	require.Len(t, replies, 1)
	assert.Equal(t, "danger", replies[0].Attachments[0].Color)
	assert.Contains(t, replies[0].Attachments[0].Text, "残念")
}

func TestServer_ActionsEndpoint_BadPayload(t *testing.T) {
	b := newTestBot(t, newFakeClient(), storage.NewMemoryStorage())
	server := NewServer(b)

	form := url.Values{"payload": {"{not json"}}
	req := httptest.NewRequest(http.MethodPost, "/slack/actions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
