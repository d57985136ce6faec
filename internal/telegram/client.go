// Package telegram delivers plain-text notifications through the Telegram Bot API.
//
// Messages longer than Telegram's limit are split on blank-line boundaries so a
// surf block is never cut in half unless it is longer than the limit itself.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLength is Telegram's limit, counted in UTF-16 code units.
const MaxMessageLength = 4096

const separator = "\n\n"

// Client handles Telegram notifications
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string) (*Client, error) {
	return NewClientWithEndpoint(botToken, chatID, tgbotapi.APIEndpoint)
}

// NewClientWithEndpoint creates a client against a custom Bot API endpoint,
// formatted like tgbotapi.APIEndpoint.
func NewClientWithEndpoint(botToken, chatID, endpoint string) (*Client, error) {
	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(botToken, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return &Client{bot: bot, chatID: chatIDInt}, nil
}

// Send delivers text as one or more messages. It stops at the first failed
// chunk and does not retry.
func (c *Client) Send(text string) error {
	chunks := split(text, MaxMessageLength)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(c.chatID, chunk)
		msg.DisableWebPagePreview = true
		if _, err := c.bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send message %d/%d: %w", i+1, len(chunks), err)
		}
	}
	return nil
}

// split packs blank-line separated parts into chunks no longer than limit.
func split(text string, limit int) []string {
	if textLen(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current string
	for _, part := range strings.Split(text, separator) {
		for textLen(part) > limit {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			head, tail := cut(part, limit)
			chunks = append(chunks, head)
			part = tail
		}

		switch {
		case current == "":
			current = part
		case textLen(current)+textLen(separator)+textLen(part) <= limit:
			current += separator + part
		default:
			chunks = append(chunks, current)
			current = part
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

// cut splits s at the last rune boundary that keeps head within limit.
func cut(s string, limit int) (head, tail string) {
	n := 0
	for i, r := range s {
		w := utf16.RuneLen(r)
		if w < 0 {
			w = 1
		}
		if n+w > limit {
			return s[:i], s[i:]
		}
		n += w
	}
	return s, ""
}

func textLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}
