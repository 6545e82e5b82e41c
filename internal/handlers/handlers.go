package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sari-Dot/Myquiz/internal/models"
	"github.com/Sari-Dot/Myquiz/internal/service"
	"github.com/Sari-Dot/Myquiz/internal/token"
)

// QuizHandlers contains the HTTP handlers for the admin and question endpoints.
type QuizHandlers struct {
	authService     *service.AuthService
	questionService *service.QuestionService
	codec           *token.Codec
}

// NewQuizHandlers creates a new handlers instance. The codec is held directly
// only for the debug token-inspection endpoint.
func NewQuizHandlers(
	authService *service.AuthService,
	questionService *service.QuestionService,
	codec *token.Codec,
) *QuizHandlers {
	return &QuizHandlers{
		authService:     authService,
		questionService: questionService,
		codec:           codec,
	}
}

// HandleHealth handles GET /health
func (h *QuizHandlers) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleAdminInit handles POST /admin/init
// Idempotently ensures the default admin account exists.
func (h *QuizHandlers) HandleAdminInit(c *fiber.Ctx) error {
	created, err := h.authService.EnsureDefaultAdmin(c.Context())
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return fail(c, fiber.StatusBadRequest, verr.Message)
		}
		slog.Error("Failed to init default admin", "err", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to initialize admin")
	}
	message := "Admin already exists"
	if created {
		message = "Default admin created"
	}
	return c.JSON(fiber.Map{"success": true, "message": message})
}

// HandleAdminLogin handles POST /admin/login
func (h *QuizHandlers) HandleAdminLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Username and password required")
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Username and password required")
	}

	tok, username, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		slog.Error("Login failed", "username", req.Username, "err", err)
		return fail(c, fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"token":    tok,
		"username": username,
	})
}

// HandleAdminVerify handles GET /admin/verify
func (h *QuizHandlers) HandleAdminVerify(c *fiber.Ctx) error {
	username, err := h.authService.Verify(c.Context(), ExtractToken(c))
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid session")
	}
	return c.JSON(fiber.Map{"success": true, "username": username})
}

// HandleAdminLogout handles POST /admin/logout
// Best effort: only legacy persistent sessions can be cleared, so this always
// reports success.
func (h *QuizHandlers) HandleAdminLogout(c *fiber.Ctx) error {
	h.authService.Logout(c.Context(), RawToken(c))
	return c.JSON(fiber.Map{"success": true})
}

// HandleDebugVerifyToken handles POST /admin/debug/verify-token
// Inspection endpoint for diagnosing token problems from the admin UI.
func (h *QuizHandlers) HandleDebugVerifyToken(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "token field required")
	}

	parts := []string{}
	if req.Token != "" {
		parts = splitToken(req.Token)
	}
	debug := fiber.Map{
		"token":       req.Token,
		"tokenLength": len(req.Token),
		"hasColon":    containsDelimiter(req.Token),
		"parts":       parts,
		"partsCount":  len(parts),
		"timestamp":   time.Now().UnixMilli(),
	}
	if claims, ok := h.codec.Verify(req.Token); ok {
		debug["verification"] = fiber.Map{
			"username":  claims.Username,
			"expiresAt": claims.ExpiresAt,
			"isExpired": claims.ExpiresAt < time.Now().UnixMilli(),
		}
	} else {
		debug["verification"] = "FAILED"
	}

	return c.JSON(fiber.Map{"success": true, "debug": debug})
}

// HandleListQuestions handles GET /questions
// Query params: level (optional)
func (h *QuizHandlers) HandleListQuestions(c *fiber.Ctx) error {
	questions, err := h.questionService.List(c.Context(), c.Query("level"))
	if err != nil {
		return questionError(c, err, "Failed to fetch questions")
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return c.JSON(fiber.Map{"success": true, "questions": questions})
}

// HandleGetQuestion handles GET /questions/:id
func (h *QuizHandlers) HandleGetQuestion(c *fiber.Ctx) error {
	question, err := h.questionService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return questionError(c, err, "Failed to fetch question")
	}
	return c.JSON(fiber.Map{"success": true, "question": question})
}

// HandleCreateQuestion handles POST /questions (admin only)
func (h *QuizHandlers) HandleCreateQuestion(c *fiber.Ctx) error {
	var input models.QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid question data")
	}
	question, err := h.questionService.Create(c.Context(), input)
	if err != nil {
		return questionError(c, err, "Failed to create question")
	}
	return c.JSON(fiber.Map{"success": true, "question": question})
}

// HandleUpdateQuestion handles PUT /questions/:id (admin only)
func (h *QuizHandlers) HandleUpdateQuestion(c *fiber.Ctx) error {
	var input models.QuestionInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid question data")
	}
	question, err := h.questionService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return questionError(c, err, "Failed to update question")
	}
	return c.JSON(fiber.Map{"success": true, "question": question})
}

// HandleDeleteQuestion handles DELETE /questions/:id (admin only)
func (h *QuizHandlers) HandleDeleteQuestion(c *fiber.Ctx) error {
	if err := h.questionService.Delete(c.Context(), c.Params("id")); err != nil {
		return questionError(c, err, "Failed to delete question")
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleSeedQuestions handles POST /admin/seed (admin only)
func (h *QuizHandlers) HandleSeedQuestions(c *fiber.Ctx) error {
	seeded, err := h.questionService.SeedStarterSet(c.Context())
	if err != nil {
		slog.Error("Failed to seed questions", "seeded", seeded, "err", err)
		return fail(c, fiber.StatusInternalServerError, "Failed to seed questions")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Seeded %d questions", seeded),
	})
}

// fail sends the uniform error envelope.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// questionError maps service errors onto the envelope and status code.
func questionError(c *fiber.Ctx, err error, fallback string) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return fail(c, fiber.StatusBadRequest, verr.Message)
	}
	if errors.Is(err, service.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Question not found")
	}
	slog.Error(fallback, "path", c.Path(), "err", err)
	return fail(c, fiber.StatusInternalServerError, fallback)
}
