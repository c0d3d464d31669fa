package contentController

import (
	"log"
	"wst/middleware"
	"wst/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminUploadFile stores a multipart upload under the upload directory,
// partitioned by MIME category, and returns its relative URL.
func AdminUploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	url, err := utils.SaveUploadedFile(file)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully.", fiber.Map{
		"url": url,
	})
}
