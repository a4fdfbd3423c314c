package handlers

import (
	"errors"

	"task-scheduler/internal/repository"
	"task-scheduler/pkg/hash"
	"task-scheduler/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Signup creates a user with a hashed password and returns a fresh
// access token, so the client is logged in right away.
func (h *Handler) Signup(c *fiber.Ctx) error {
	type SignupRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in signup", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Bad request",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during signup", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation error",
		})
	}

	passwordHash, err := hash.Password(req.Password)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving user",
		})
	}

	user, err := h.users.Create(c.Context(), req.Username, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			logger.SecurityLogger.Warn("Duplicate email on signup", zap.String("email", req.Email))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "email already exists",
			})
		}
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving user",
		})
	}

	accessToken, err := h.tokens.Issue(user)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving user",
		})
	}

	logger.AuditLogger.Info("User registered", zap.Int("userID", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"accessToken": accessToken,
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Bad request",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.SecurityLogger.Warn("Login with unknown email", zap.String("email", req.Email))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		logger.ErrorLogger.Error("Error finding user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if !hash.Verify(req.Password, user.PasswordHash) {
		logger.SecurityLogger.Warn("Invalid password", zap.String("email", req.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	accessToken, err := h.tokens.Issue(user)
	if err != nil {
		logger.ErrorLogger.Error("Error generating token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	logger.AuditLogger.Info("Login success", zap.Int("userID", user.ID))
	return c.JSON(fiber.Map{
		"accessToken": accessToken,
	})
}

// Logout is a stateless acknowledgment. Tokens self-expire and there is
// no server-side session to invalidate.
func (h *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}
