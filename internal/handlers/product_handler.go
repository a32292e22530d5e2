package handlers

import (
	"log"

	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/produto", h.HandleCreateProduct)
	router.Get("/produtos", h.HandleGetProducts)
	router.Get("/produto/:id", h.HandleGetProductByID)
	router.Put("/produto/:id", h.HandleUpdateProduct)
	router.Delete("/produto/:id", h.HandleDeleteProduct)
}

// productID parses the :id path parameter. Anything that is not a positive
// integer cannot name a product.
func productID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{key: msgNotFound})
}

// HandleCreateProduct creates a product from form data.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := parseCreateForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errCreatePrefix + err.Error(),
		})
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errCreatePrefix + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msgCreated,
		"id":      product.ID,
	})
}

// HandleGetProducts lists every product.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": errListPrefix + err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c, "error")
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		if statusFor(err) == fiber.StatusNotFound {
			return notFound(c, "error")
		}
		log.Printf("Error getting product by ID %d: %v", id, err)
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": errGetPrefix + err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleUpdateProduct overwrites the fields supplied in the form.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c, "error")
	}

	update, err := parseUpdateForm(c)
	if err != nil {
		// A missing product takes precedence over a malformed form.
		if _, lookupErr := h.service.GetProductByID(c.UserContext(), id); statusFor(lookupErr) == fiber.StatusNotFound {
			return notFound(c, "error")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errUpdatePrefix + err.Error(),
		})
	}

	if _, err := h.service.UpdateProduct(c.UserContext(), id, update); err != nil {
		if statusFor(err) == fiber.StatusNotFound {
			return notFound(c, "error")
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": errUpdatePrefix + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": msgUpdated,
	})
}

// HandleDeleteProduct permanently removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return notFound(c, "message")
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		if statusFor(err) == fiber.StatusNotFound {
			return notFound(c, "message")
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": errDeletePrefix + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": msgDeleted,
	})
}
