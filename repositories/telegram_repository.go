package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/models"
)

// TelegramRepository delivers reminder texts over the Telegram Bot API. Every
// failure is wrapped as a DispatchFailureError so sweep loops can treat it as
// a skip-and-retry-next-tick condition.
type TelegramRepository struct {
	client infra.TelegramClient
}

func NewTelegramRepository(client infra.TelegramClient) TelegramRepository {
	return TelegramRepository{client: client}
}

type telegramSendMessageRequest struct {
	ChatId    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramSendMessageResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (repo TelegramRepository) SendMessage(ctx context.Context, chatId string, text string) error {
	if repo.client.BotToken == "" {
		return errors.Wrap(models.DispatchFailureError, "telegram client is not configured")
	}

	body, err := json.Marshal(telegramSendMessageRequest{
		ChatId:    chatId,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return errors.Wrap(err, "can't marshal telegram sendMessage request")
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", repo.client.BaseUrl, repo.client.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "can't build telegram sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := repo.client.HttpClient.Do(req)
	if err != nil {
		return errors.Wrap(models.DispatchFailureError, err.Error())
	}
	defer resp.Body.Close()

	var parsed telegramSendMessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&parsed); err != nil {
		return errors.Wrap(models.DispatchFailureError,
			fmt.Sprintf("telegram responded %d with unreadable body", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK || !parsed.Ok {
		return errors.Wrap(models.DispatchFailureError,
			fmt.Sprintf("telegram responded %d: %s", resp.StatusCode, parsed.Description))
	}
	return nil
}
