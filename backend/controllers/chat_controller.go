package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"studydash/backend/config"
	"studydash/backend/llm"
	"studydash/backend/models"
	"studydash/backend/utils"
)

type ChatController struct {
	Cfg *config.Config
	LLM *llm.Client
}

func NewChatController(cfg *config.Config) *ChatController {
	return &ChatController{
		Cfg: cfg,
		LLM: llm.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel),
	}
}

// Chat godoc
// @Summary Proxy a chat message to the completion service
// @Description Forwards the message with the mode's system instruction and relays the reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Message and persona mode"
// @Success 200 {object} models.ChatResponse
// @Failure 500 {object} map[string]interface{}
// @Router /chat [post]
func (cc *ChatController) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// An empty message is forwarded as-is; only the legacy route rejects it.
	return cc.complete(c, req.Message, req.Mode)
}

// Ask godoc
// @Summary Legacy chat endpoint
// @Description Alias for /chat with the old {prompt} body; rejects an empty prompt
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.AskRequest true "Prompt"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /ask [post]
func (cc *ChatController) Ask(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return utils.BadRequest(c, "Missing prompt")
	}

	return cc.complete(c, req.Prompt, req.Mode)
}

func (cc *ChatController) complete(c *fiber.Ctx, message, mode string) error {
	if cc.Cfg.OpenAIKey == "" {
		return utils.InternalServerError(c, "Server missing OPENAI_KEY")
	}

	reply, err := cc.LLM.Complete(c.Context(), llm.SystemPromptFor(mode), message)
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			// Relay the downstream status and body verbatim, no retry.
			return utils.Error(c, upstream.StatusCode, upstream.Body)
		}
		return utils.InternalServerError(c, err.Error())
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}
