package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"reflect"
	"strings"
	"time"

	"produtos/internal/models"
	"produtos/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes product change events. It is satisfied by
// *rabbitmq.Client.
type EventPublisher interface {
	Publish(payload interface{}) error
}

// Options tunes the checks applied by ProductService.
type Options struct {
	// ValidateImageURL requires Imagem to be an absolute URL.
	ValidateImageURL bool
	// Publisher receives an event after every committed change. May be nil.
	Publisher EventPublisher
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
	opts     Options
	timeNow  func() time.Time
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, opts Options) *ProductService {
	validate := validator.New()
	// Report JSON field names (imagem, nome, ...) instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ProductService{
		repo:     repo,
		validate: validate,
		opts:     opts,
		timeNow:  time.Now,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates the input and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if err := s.validateStruct(input); err != nil {
		return nil, err
	}
	if err := s.checkValor(input.Valor); err != nil {
		return nil, err
	}
	if err := s.checkImagem(&input.Imagem); err != nil {
		return nil, err
	}

	product := &models.Product{
		Imagem:    input.Imagem,
		Nome:      input.Nome,
		Valor:     *input.Valor,
		Descricao: input.Descricao,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.publish(models.EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct applies the supplied fields to an existing product. An
// unknown id is reported before any problem with the supplied fields.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, update models.ProductUpdate) (*models.Product, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateStruct(update); err != nil {
		return nil, err
	}
	if err := s.checkValor(update.Valor); err != nil {
		return nil, err
	}
	if err := s.checkImagem(update.Imagem); err != nil {
		return nil, err
	}

	product, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventProductUpdated, product.ID, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(models.EventProductDeleted, id, nil)
	return nil
}

func (s *ProductService) validateStruct(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate product: %w", err)
	}
	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = describe(e)
	}
	return &ValidationError{Fields: fields}
}

func (s *ProductService) checkValor(valor *float64) error {
	if valor != nil && (math.IsNaN(*valor) || math.IsInf(*valor, 0)) {
		return NewValidationError("valor", "must be a finite number")
	}
	return nil
}

func (s *ProductService) checkImagem(imagem *string) error {
	if !s.opts.ValidateImageURL || imagem == nil {
		return nil
	}
	if err := s.validate.Var(*imagem, "url"); err != nil {
		return NewValidationError("imagem", "must be a valid URL")
	}
	return nil
}

// publish sends a change event. The change is already committed, so a
// failure is only logged.
func (s *ProductService) publish(eventType string, id uint, product *models.Product) {
	if s.opts.Publisher == nil {
		return
	}
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Product:    product,
		OccurredAt: s.timeNow().UTC(),
	}
	if err := s.opts.Publisher.Publish(event); err != nil {
		log.Printf("Error publishing %s event for product %d: %v", eventType, id, err)
	}
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	default:
		return fmt.Sprintf("failed on the '%s' tag", e.Tag())
	}
}
