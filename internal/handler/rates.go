package handler

import (
	"fmt"
	"strings"

	"operkassa/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleRates shows current rates. Read-only, no authorization required.
func (h *Handler) handleRates(c tele.Context) error {
	rates, err := h.rateService.List()
	if err != nil {
		h.logger.Error("Failed to get rates", zap.Error(err))
		return c.Send("❌ Курсы еще не установлены")
	}

	var sb strings.Builder
	sb.WriteString("💱 Текущие курсы:\n\n")

	for _, currency := range rates {
		if currency.ShowRates {
			sb.WriteString(fmt.Sprintf("✅ %s\n", currency.Name))
			sb.WriteString(fmt.Sprintf("   Покупка: %s ₽\n", domain.FormatRate(currency.Buy)))
			sb.WriteString(fmt.Sprintf("   Продажа: %s ₽\n", domain.FormatRate(currency.Sell)))
		} else {
			sb.WriteString(fmt.Sprintf("❌ %s — уточняйте по телефону\n", currency.Name))
		}

		if !currency.Updated.IsZero() {
			sb.WriteString(fmt.Sprintf("   Обновлено: %s\n", currency.UpdatedTimeString()))
		}
		sb.WriteString("\n")
	}

	return c.Send(sb.String())
}
