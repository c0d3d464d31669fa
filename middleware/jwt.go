package middleware

import (
	"fmt"
	"strings"
	"time"
	"wst/config"
	"wst/database"
	"wst/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateAdminJWT generates a token for a backoffice admin, signed with
// the admin secret.
func GenerateAdminJWT(adminID uint, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"adminId":  adminID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.AdminJWTKey))
}

// GenerateWorkerJWT generates a token for a worker, signed with the worker
// secret. The two schemes are independent; a worker token never verifies
// on an admin route and vice versa.
func GenerateWorkerJWT(workerID uint, sapID string) (string, error) {
	claims := jwt.MapClaims{
		"workerId": workerID,
		"sapId":    sapID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.WorkerJWTKey))
}

func parseBearer(c *fiber.Ctx, secret string) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// AdminJWTMiddleware verifies an admin bearer token and resolves the admin
// record. The admin (with role and company scope) is stored in locals.
func AdminJWTMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c, config.AppConfig.AdminJWTKey)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	idClaim, ok := claims["adminId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
	}

	// Token subject must still exist
	var admin models.Admin
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", uint(idClaim), false).First(&admin).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Admin not found!", nil)
	}

	c.Locals("adminId", admin.ID)
	c.Locals("admin", &admin)

	return c.Next()
}

// WorkerJWTMiddleware verifies a worker bearer token and resolves the
// worker record into locals.
func WorkerJWTMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c, config.AppConfig.WorkerJWTKey)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	idClaim, ok := claims["workerId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload!", nil)
	}

	var worker models.Worker
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_active = ?", uint(idClaim), false, true).First(&worker).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Worker not found!", nil)
	}

	c.Locals("workerId", worker.ID)
	c.Locals("worker", &worker)

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
