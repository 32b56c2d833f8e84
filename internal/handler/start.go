package handler

import (
	"fmt"

	"operkassa/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const accessDeniedMessage = "🔒 Доступ запрещен!\n\n" +
	"Для работы с ботом необходимо авторизоваться.\n" +
	"Используйте команду /auth для ввода пароля."

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.dialogues.Reset(userID)
	return h.sendMenu(c)
}

// sendMenu sends the main menu with the current authorization status
func (h *Handler) sendMenu(c tele.Context) error {
	authorized := h.authService.IsAuthorized(c.Sender().ID)

	status := "❌ Не авторизован"
	if authorized {
		status = "✅ Авторизован"
	}

	text := fmt.Sprintf("💱 Бот управления курсами валют\n\nСтатус: %s\n\nВыберите действие:", status)
	return c.Send(text, mainMenuMarkup(authorized))
}

// handleHelp handles /help command.
// The shared password is never included in the help text.
func (h *Handler) handleHelp(c tele.Context) error {
	helpText := `💱 Доступные команды:

/start - Главное меню
/rates - Текущие курсы
/auth - Авторизация
/edit - Изменить курс валюты (требует авторизации)
/logout - Выйти из системы
/help - Эта справка

Инструкция по изменению курса:
1. Нажмите "🔐 Авторизация" и введите пароль
2. Нажмите "✏️ Изменить курс"
3. Выберите валюту из списка
4. Введите курс покупки
5. Введите курс продажи
6. Курсы автоматически обновятся на сайте

Примечание: курс продажи должен быть выше курса покупки.`

	return c.Send(helpText)
}

// handleAuth begins the password flow
func (h *Handler) handleAuth(c tele.Context) error {
	userID := c.Sender().ID

	if h.authService.IsAuthorized(userID) {
		return c.Send("✅ Вы уже авторизованы!")
	}

	h.dialogues.Set(userID, &domain.StateData{State: domain.StateAwaitingPassword})
	return c.Send("🔒 Авторизация\n\nВведите пароль для доступа к управлению курсами:")
}

// handleLogout handles logout
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	h.authService.Revoke(userID)
	h.dialogues.Reset(userID)

	h.logger.Info("User logged out", zap.Int64("user_id", userID))

	if err := c.Send("🚪 Вы вышли из системы."); err != nil {
		return err
	}
	return h.sendMenu(c)
}

// handleUpdateAll handles the bulk-update button.
// Gated on authorization; mass updates are not implemented yet.
func (h *Handler) handleUpdateAll(c tele.Context) error {
	if !h.authService.IsAuthorized(c.Sender().ID) {
		return c.Send(accessDeniedMessage)
	}

	return c.Send("🔄 Функция массового обновления в разработке")
}
