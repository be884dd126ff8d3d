package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "sudsshop/internal/log"
	"sudsshop/internal/telegram"
)

// RelayHandler is the order relay: it accepts the checkout JSON payload and
// forwards a formatted message to the owner chat via the Telegram Bot API.
type RelayHandler struct {
	Bot    *telegram.Client
	ChatID string
}

type relayOrder struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Items   []struct {
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	} `json:"items"`
	Total float64 `json:"total"`
	Nonce string  `json:"nonce"`
}

// Forward implements POST /api/order. It answers {ok:true}/{ok:false} only;
// the Bot API response is never echoed back.
func (h *RelayHandler) Forward(c *fiber.Ctx) error {
	var o relayOrder
	if err := c.BodyParser(&o); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "invalid payload"})
	}
	if o.Phone == "" || o.Address == "" || len(o.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "missing required order fields"})
	}
	if !h.Bot.Configured() || h.ChatID == "" {
		applog.Error(c, "relay.config.missing", nil, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": "server configuration error"})
	}

	if err := h.Bot.SendMessage(c.Context(), h.ChatID, relayMessage(o)); err != nil {
		applog.Error(c, "relay.send.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false})
	}
	applog.Audit(c, "relay.send", map[string]any{"items": len(o.Items), "nonce": o.Nonce})
	return c.JSON(fiber.Map{"ok": true})
}

func relayMessage(o relayOrder) string {
	var b strings.Builder
	b.WriteString("🛍️ *New Order Received!*\n\n*Items:*\n")
	for _, it := range o.Items {
		sub := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(&b, "- %s x %d ($%s)\n", it.Name, it.Quantity, sub.StringFixed(2))
	}
	fmt.Fprintf(&b, "\n*Total:* $%s\n\n", decimal.NewFromFloat(o.Total).StringFixed(2))
	fmt.Fprintf(&b, "*Customer Details:*\n📞 %s\n📍 %s", o.Phone, o.Address)
	return b.String()
}
