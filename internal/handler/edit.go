package handler

import (
	"errors"
	"fmt"
	"strings"

	"operkassa/internal/catalog"
	"operkassa/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleEdit begins the rate-edit dialogue with a currency selection keyboard
func (h *Handler) handleEdit(c tele.Context) error {
	userID := c.Sender().ID

	if !h.authService.IsAuthorized(userID) {
		return c.Send(accessDeniedMessage)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, entry := range catalog.All() {
		btn := markup.Data(entry.Name, "edit_"+entry.Code)
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return c.Send("💰 Выберите валюту для изменения курса:", markup)
}

// handleText handles all free text messages based on dialogue state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.dialogues.Get(userID)

	switch state.State {
	case domain.StateAwaitingPassword:
		return h.processPassword(c, text)
	case domain.StateAwaitingBuy:
		return h.processBuyRate(c, state, text)
	case domain.StateAwaitingSell:
		return h.processSellRate(c, state, text)
	default:
		return c.Send("🤔 Не понимаю команду. Используйте кнопки меню или /help для справки.")
	}
}

// processPassword handles password input. A wrong password returns the user
// to the idle state; the flow must be restarted with /auth.
func (h *Handler) processPassword(c tele.Context, password string) error {
	userID := c.Sender().ID
	h.dialogues.Reset(userID)

	if !h.authService.CheckPassword(password) {
		h.logger.Warn("Failed authorization attempt", zap.Int64("user_id", userID))
		return c.Send("❌ Неверный пароль!\n\nПопробуйте снова или обратитесь к администратору.")
	}

	h.authService.Authorize(userID)
	h.logger.Info("User authorized", zap.Int64("user_id", userID))

	if err := c.Send("✅ Авторизация успешна!\n\nТеперь вы можете изменять курсы валют."); err != nil {
		return err
	}
	return h.sendMenu(c)
}

// processBuyRate handles buy rate input
func (h *Handler) processBuyRate(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	buy, err := domain.ParseRate(text)
	if err != nil {
		return c.Send("❌ Неверный формат числа. Введите число (например: 95.5):")
	}
	if buy <= 0 {
		return c.Send("❌ Курс должен быть больше 0. Попробуйте снова:")
	}

	h.dialogues.Set(userID, &domain.StateData{
		State: domain.StateAwaitingSell,
		Code:  state.Code,
		Buy:   buy,
	})

	return c.Send("Теперь введите курс продажи (только число, например: 97.8):")
}

// processSellRate handles sell rate input and saves the pair.
// On a storage failure the state is kept so the operator can resend
// the value instead of restarting the whole dialogue.
func (h *Handler) processSellRate(c tele.Context, state *domain.StateData, text string) error {
	userID := c.Sender().ID

	sell, err := domain.ParseRate(text)
	if err != nil {
		return c.Send("❌ Неверный формат числа. Введите число (например: 97.8):")
	}
	if sell <= 0 {
		return c.Send("❌ Курс должен быть больше 0. Попробуйте снова:")
	}
	if sell <= state.Buy {
		return c.Send("❌ Курс продажи должен быть выше курса покупки. Попробуйте снова:")
	}

	record, err := h.rateService.UpdateRate(state.Code, state.Buy, sell)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCurrency) {
			h.dialogues.Reset(userID)
			return c.Send("❌ Валюта не найдена")
		}

		h.logger.Error("Failed to save rates",
			zap.String("code", state.Code),
			zap.Error(err),
		)
		return c.Send("❌ Ошибка при сохранении курсов в базу данных. Попробуйте ещё раз:")
	}

	h.dialogues.Reset(userID)

	response := fmt.Sprintf(
		"✅ Курсы обновлены!\n\n%s\n🏦 Покупка: %s ₽\n💸 Продажа: %s ₽\n🕐 Обновлено: %s",
		record.Name,
		domain.FormatRate(record.Buy),
		domain.FormatRate(record.Sell),
		record.UpdatedTimeString(),
	)
	return c.Send(response)
}
