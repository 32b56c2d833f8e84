package handler

import (
	"strings"
	"unicode"

	"operkassa/internal/catalog"
	"operkassa/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callback queries not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)

	if callback.Unique == "cancel" || data == "cancel" {
		return h.handleCancel(c)
	}

	if strings.HasPrefix(data, "edit_") {
		return h.handleCurrencySelection(c, strings.TrimPrefix(data, "edit_"))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleCurrencySelection handles a currency pick from the edit keyboard
func (h *Handler) handleCurrencySelection(c tele.Context, code string) error {
	userID := c.Sender().ID

	if !h.authService.IsAuthorized(userID) {
		return c.Respond(&tele.CallbackResponse{
			Text:      "❌ Не авторизован!",
			ShowAlert: true,
		})
	}

	entry, found := catalog.Lookup(code)
	if !found {
		return c.Respond(&tele.CallbackResponse{Text: "❌ Валюта не найдена"})
	}

	h.dialogues.Set(userID, &domain.StateData{
		State: domain.StateAwaitingBuy,
		Code:  entry.Code,
	})

	h.logger.Info("Rate edit started",
		zap.Int64("user_id", userID),
		zap.String("code", entry.Code),
	)

	if err := c.Send("✏️ Редактирование " + entry.Name + "\n\nВведите курс покупки (только число, например: 95.5):"); err != nil {
		return err
	}
	return c.Respond()
}

// handleCancel cancels the current dialogue and removes the keyboard
func (h *Handler) handleCancel(c tele.Context) error {
	h.dialogues.Reset(c.Sender().ID)

	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete message on cancel", zap.Error(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "Действие отменено"})
}
