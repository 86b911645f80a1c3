package handler

import (
	"encoding/json"
	"log"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeOrders only upgrades authenticated requests; Protected has already
// put the session into Locals.
func UpgradeOrders(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("wsSession", helper.CurrentSession(c))
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// OrdersWebsocket streams order and seating events to a staff screen. The
// first frame is a hello with the current pending count.
func OrdersWebsocket(c *websocket.Conn) {
	session, _ := c.Locals("wsSession").(*model.Session)

	hello, _ := json.Marshal(helper.Event{Type: "hello", PendingCount: helper.PendingCount(database.DB)})
	if err := c.WriteMessage(websocket.TextMessage, hello); err != nil {
		c.Close()
		return
	}

	helper.Subscribe(c)
	defer func() {
		helper.Unsubscribe(c)
		c.Close()
	}()
	if session != nil {
		log.Printf("Order stream opened for %s (%s)", session.Name, session.Role)
	}

	// Clients never send anything meaningful; reading detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
