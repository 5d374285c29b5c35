package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

type TelegramSender struct {
	client  *http.Client
	baseURL string
	token   string
	chatID  string
}

func NewTelegramSender(token, chatID string) *TelegramSender {
	return &TelegramSender{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: telegramAPIBase,
		token:   token,
		chatID:  chatID,
	}
}

type telegramMessage struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (s *TelegramSender) Send(ctx context.Context, subject, message string) error {
	payload := telegramMessage{
		ChatID: s.chatID,
		Text:   subject + "\n\n" + message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage returned status %d", resp.StatusCode)
	}

	return nil
}
