package infra

import (
	"net/http"
	"time"
)

const telegramApiBaseUrl = "https://api.telegram.org"

// Dispatch must never stall a sweep: a stuck Telegram call times out and the
// affected case is retried on the next tick.
const telegramSendTimeout = 10 * time.Second

type TelegramConfiguration struct {
	BotToken string
	BaseUrl  string
}

func (config TelegramConfiguration) IsConfigured() bool {
	return config.BotToken != ""
}

type TelegramClient struct {
	BaseUrl    string
	BotToken   string
	HttpClient *http.Client
}

func InitializeTelegramClient(config TelegramConfiguration) TelegramClient {
	baseUrl := config.BaseUrl
	if baseUrl == "" {
		baseUrl = telegramApiBaseUrl
	}

	return TelegramClient{
		BaseUrl:  baseUrl,
		BotToken: config.BotToken,
		HttpClient: &http.Client{
			Timeout: telegramSendTimeout,
		},
	}
}
