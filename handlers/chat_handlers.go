package handlers

import (
	"context"
	"log"
	"strings"

	"app/chatbot"
	"app/database"

	"github.com/gofiber/fiber/v2"
)

// HandleChat answers a chat message. The remote responder is tried first;
// any failure falls back to the deterministic keyword responder, so the
// endpoint succeeds whenever the message is well-formed.
// POST /api/v1/chat
func HandleChat(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty message"})
	}

	ctx := context.Background()

	reply, err := remoteBot.Respond(ctx, message)
	if err != nil {
		log.Printf("Remote chatbot unavailable, using fallback: %v", err)
		reply, _ = localBot.Respond(ctx, message)
	}

	if err := saveChat(ctx, message, reply); err != nil {
		log.Printf("Failed to save chat: %v", err)
	}
	logActivity(ctx, "chatbot_interaction", "Chat response generated", truncate(message, 50))

	return c.JSON(fiber.Map{
		"response": reply.Text,
		"status":   "success",
		"source":   reply.Source,
	})
}

func saveChat(ctx context.Context, message string, reply chatbot.Reply) error {
	query := `
		INSERT INTO chatbot_conversations (user_message, bot_response, source)
		VALUES ($1, $2, $3)
	`
	_, err := database.GetDB().Exec(ctx, query, message, reply.Text, reply.Source)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
